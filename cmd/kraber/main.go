/*
File    : kraber/cmd/kraber/main.go
*/

// Command kraber is the entry point for the language. It provides three
// modes of operation:
//  1. REPL mode (default): interactive read-eval-print loop.
//  2. File mode: run a single source file and print its final memory.
//  3. Server mode: accept TCP connections and start a REPL session for
//     each — an external-boundary convenience outside the language
//     core. A session writes its output to the connection; its input
//     lines are read from the process's standard input, not from the
//     connection.
package main

import (
	"fmt"
	"net"
	"os"
	"sort"

	"github.com/fatih/color"

	"github.com/intfract/kraber/ast"
	"github.com/intfract/kraber/eval"
	"github.com/intfract/kraber/lexer"
	"github.com/intfract/kraber/parser"
	"github.com/intfract/kraber/repl"
	"github.com/intfract/kraber/source"
)

var (
	version = "v0.1.0"
	author  = "intfract"
	line    = "----------------------------------------------------------------"
	prompt  = "kraber >>> "
	banner  = `
  _               _
 | | ___ __ _ ___| |__   ___ _ __
 | |/ / '__/ _` + "`" + ` / _ \ '_ \ / _ \ '__|
 |   <| | | (_| |  __/ |_) |  __/ |
 |_|\_\_|  \__,_|\___|_.__/ \___|_|
`
)

var (
	redColor   = color.New(color.FgRed)
	cyanColor  = color.New(color.FgCyan)
	whiteColor = color.New(color.FgWhite)
)

func main() {
	if len(os.Args) <= 1 {
		repl.NewRepl(banner, version, author, line, prompt).Start(os.Stdout)
		return
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp()
	case "--version", "-v":
		showVersion()
	case "server":
		if len(os.Args) < 3 {
			redColor.Fprintln(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: kraber server <port>")
			os.Exit(1)
		}
		startServer(os.Args[2])
	default:
		runFile(arg)
	}
}

func showHelp() {
	cyanColor.Println("kraber - a small interpreted language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	whiteColor.Println("  kraber                 start the interactive REPL")
	whiteColor.Println("  kraber <path>          run a kraber source file")
	whiteColor.Println("  kraber server <port>   serve REPL sessions over TCP")
	whiteColor.Println("  kraber --help          show this message")
	whiteColor.Println("  kraber --version       show version information")
}

func showVersion() {
	cyanColor.Printf("kraber %s\n", version)
}

// runFile reads, lexes, parses, and interprets path, exiting nonzero and
// printing a single diagnostic on any failure, and otherwise printing the
// final memory for inspection.
func runFile(path string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	text, err := source.Load(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", err)
		os.Exit(1)
	}

	tree, err := parser.Parse(lexer.Tokenize(text))
	if err != nil {
		redColor.Fprintf(os.Stderr, "[PARSE ERROR] %v\n", err)
		os.Exit(1)
	}

	interp := eval.New(tree, os.Stdout)
	if err := interp.Run(); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	printMemory(interp)
}

func printMemory(interp *eval.Interpreter) {
	mem := interp.Memory()
	names := make([]string, 0, len(mem))
	for name := range mem {
		names = append(names, name)
	}
	sort.Strings(names)

	cyanColor.Fprintln(os.Stdout, line)
	cyanColor.Fprintln(os.Stdout, "final memory:")
	for _, name := range names {
		v := mem[name]
		if v.Value.Kind == ast.KraberFunction {
			continue
		}
		fmt.Fprintf(os.Stdout, "  %s (%s) = %s\n", name, v.DataType.Name, v.Value.Display())
	}
}

func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("kraber REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repl.NewRepl(banner, version, author, line, prompt).Start(conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
