// Command lox runs Lox scripts and hosts an interactive REPL.
//
// Usage:
//
//	lox <file.lox>   run a script
//	lox              start the REPL
//	lox version      print the version
//
// Exit codes follow sysexits: 64 usage, 65 lexical/parse error, 70 runtime
// error.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	lox "github.com/incrypto32/crafting-intrepreters"
)

const appName = "lox"

const helpText = `
REPL commands:
  :quit    Exit the REPL
  :ast     Toggle printing the parsed AST before evaluating
  :help    Show this help
`

func main() {
	args := os.Args[1:]
	switch {
	case len(args) == 0:
		os.Exit(cmdRepl())
	case args[0] == "version":
		fmt.Println(lox.Version)
	case args[0] == "-h" || args[0] == "--help" || args[0] == "help":
		usage()
	case len(args) == 1:
		os.Exit(cmdRun(args[0]))
	default:
		usage()
		os.Exit(64)
	}
}

func usage() {
	fmt.Printf(`Lox %s (built %s)

Usage:
  %s <file.lox>    Run a script.
  %s               Start the REPL.
  %s version       Print the version.

`, lox.Version, lox.BuildDate, appName, appName, appName)
}

func color(enabled bool, code, s string) string {
	if !enabled {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(file string) int {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 66 // EX_NOINPUT
	}

	name := filepath.Base(file)
	toks, lexErrs := lox.Scan(string(src))
	if len(lexErrs) > 0 {
		for _, le := range lexErrs {
			fmt.Fprintln(os.Stderr, lox.WrapErrorWithName(le, name, string(src)).Error())
		}
		return 65
	}

	stmts, perr := lox.Parse(toks)
	if perr != nil {
		fmt.Fprintln(os.Stderr, lox.WrapErrorWithName(perr, name, string(src)).Error())
		return 65
	}

	ip := lox.NewInterpreter()
	if rerr := ip.Interpret(stmts); rerr != nil {
		fmt.Fprintln(os.Stderr, lox.WrapErrorWithName(rerr, name, string(src)).Error())
		return 70
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl() int {
	cfg := loadConfig()
	fmt.Printf("Lox %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", lox.Version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := lox.NewInterpreter()
	showAST := false

	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if strings.HasPrefix(code, ":") {
			switch strings.ToLower(code) {
			case ":quit":
				return 0
			case ":ast":
				showAST = !showAST
				fmt.Printf("ast printing %s\n", onOff(showAST))
			case ":help":
				fmt.Print(helpText)
			default:
				fmt.Println("unknown command. Type :help for help.")
			}
			continue
		}

		evalLine(ip, cfg, code, showAST)
		ln.AppendHistory(line)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// evalLine runs one REPL line: scan, parse as statements, and on a parse
// failure retry the line as a bare expression so `1 + 2` echoes its value
// without needing a trailing ';'. A failing line never poisons later lines:
// the interpreter (and its environment) lives on.
func evalLine(ip *lox.Interpreter, cfg *replConfig, code string, showAST bool) {
	red := func(s string) string { return color(cfg.Color, "31", s) }
	green := func(s string) string { return color(cfg.Color, "32", s) }
	blue := func(s string) string { return color(cfg.Color, "94", s) }

	toks, lexErrs := lox.Scan(code)
	if len(lexErrs) > 0 {
		for _, le := range lexErrs {
			fmt.Fprintln(os.Stderr, red(lox.WrapErrorWithSource(le, code).Error()))
		}
		return
	}

	stmts, perr := lox.Parse(toks)
	if perr != nil {
		// retry as a bare expression
		expr, eerr := lox.NewParser(toks).ParseExpression()
		if eerr != nil {
			fmt.Fprintln(os.Stderr, red(lox.WrapErrorWithSource(perr, code).Error()))
			return
		}
		if showAST {
			fmt.Println(green(lox.FormatExpr(expr)))
		}
		v, rerr := ip.Evaluate(expr)
		if rerr != nil {
			fmt.Fprintln(os.Stderr, red(lox.WrapErrorWithSource(rerr, code).Error()))
			return
		}
		fmt.Println(blue(lox.FormatValue(v)))
		return
	}

	if showAST {
		for _, st := range stmts {
			fmt.Println(green(lox.FormatStmt(st)))
		}
	}
	if rerr := ip.Interpret(stmts); rerr != nil {
		fmt.Fprintln(os.Stderr, red(lox.WrapErrorWithSource(rerr, code).Error()))
	}
}
