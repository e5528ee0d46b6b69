/*
File    : kraber/repl/repl.go
*/

// Package repl implements the Read-Eval-Print Loop for kraber: a
// readline-driven loop with colored feedback that buffers input
// line-by-line until braces balance before handing a fragment to the
// lexer/parser/interpreter, since kraber's while loops and function
// literals span multiple lines with no statement terminator the REPL
// could otherwise split on.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/intfract/kraber/eval"
	"github.com/intfract/kraber/lexer"
	"github.com/intfract/kraber/memory"
	"github.com/intfract/kraber/parser"
	"github.com/intfract/kraber/std"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// NewRepl creates a Repl ready to Start.
func NewRepl(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and short usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type kraber statements and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Unbalanced braces keep reading further lines as one fragment.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop, reading lines via readline and writing
// results and diagnostics to writer.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	mem := std.Seed(memory.New())
	var pending strings.Builder
	depth := 0

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		trimmed := strings.Trim(line, " \t\r\n")
		if depth == 0 && trimmed == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		if depth == 0 && trimmed == "" {
			continue
		}

		rl.SaveHistory(line)
		pending.WriteString(line)
		pending.WriteByte('\n')
		depth += braceDelta(line)
		if depth > 0 {
			continue
		}

		fragment := pending.String()
		pending.Reset()
		depth = 0

		mem = r.executeWithRecovery(writer, fragment, mem)
	}
}

func braceDelta(line string) int {
	delta := 0
	for _, r := range line {
		switch r {
		case '{':
			delta++
		case '}':
			delta--
		}
	}
	return delta
}

// executeWithRecovery parses and runs one fragment against mem, returning
// the memory the next fragment should continue from. Any parse or
// runtime error is reported and mem is returned unchanged, so a mistake
// never loses the session's prior state.
func (r *Repl) executeWithRecovery(writer io.Writer, fragment string, mem memory.Memory) (next memory.Memory) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
			next = mem
		}
	}()

	tree, err := parser.Parse(lexer.Tokenize(fragment))
	if err != nil {
		redColor.Fprintf(writer, "[PARSE ERROR] %s\n", err)
		return mem
	}

	interp := eval.NewWithMemory(tree, mem.Clone(), writer)
	if err := interp.Run(); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return mem
	}
	return interp.Memory()
}
