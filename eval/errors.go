/*
File    : kraber/eval/errors.go
*/
package eval

import "github.com/intfract/kraber/kerr"

// TypeError, ArgError and NameError are the three runtime error kinds the
// interpreter can surface; std constructs ArgError as well, so the
// concrete types live in kerr and are re-exported here under the names
// callers of this package expect.
type (
	TypeError = kerr.TypeError
	ArgError  = kerr.ArgError
	NameError = kerr.NameError
)

func newTypeError(format string, args ...interface{}) error { return kerr.NewTypeError(format, args...) }
func newArgError(format string, args ...interface{}) error  { return kerr.NewArgError(format, args...) }
func newNameError(format string, args ...interface{}) error { return kerr.NewNameError(format, args...) }
