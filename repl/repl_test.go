/*
File    : kraber/repl/repl_test.go
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intfract/kraber/memory"
	"github.com/intfract/kraber/std"
)

func TestBraceDelta(t *testing.T) {
	assert.Equal(t, 1, braceDelta("while lt(i 3) {"))
	assert.Equal(t, -1, braceDelta("}"))
	assert.Equal(t, 0, braceDelta("set x to 1"))
}

func TestExecuteWithRecovery_PersistsMemoryAcrossFragments(t *testing.T) {
	r := NewRepl("", "test", "", "", "> ")
	mem := std.Seed(memory.New())
	var out bytes.Buffer

	mem = r.executeWithRecovery(&out, "declare x as integer\n", mem)
	mem = r.executeWithRecovery(&out, "set x to 5\n", mem)
	mem = r.executeWithRecovery(&out, "x\n", mem)

	assert.Contains(t, out.String(), "5")
	v, ok := mem.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(5), v.Value.IntegerValue)
}

func TestExecuteWithRecovery_ParseErrorLeavesMemoryUnchanged(t *testing.T) {
	r := NewRepl("", "test", "", "", "> ")
	mem := std.Seed(memory.New())
	var out bytes.Buffer

	before := len(mem)
	mem = r.executeWithRecovery(&out, "declare 1\n", mem)

	assert.Contains(t, out.String(), "PARSE ERROR")
	assert.Len(t, mem, before)
}
