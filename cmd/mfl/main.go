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

	"github.com/fatih/color"
	"github.com/peterh/liner"

	mfl "github.com/Augustalex/MinimalFunctionalLanguage"
)

const (
	appName     = "mfl"
	historyFile = ".mfl_history"
	histEnvVar  = "MFL_HISTORY"
	promptMain  = "=> "
)

var (
	banner   = fmt.Sprintf("MFL %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", mfl.Version)
	errColor = color.New(color.FgRed)
)

func main() {
	if len(os.Args) < 2 {
		os.Exit(cmdRepl())
	}

	switch cmd := os.Args[1]; cmd {
	case "repl":
		os.Exit(cmdRepl())
	case "version":
		fmt.Println(mfl.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`MFL %s

Usage:
  %s [repl]     Start the REPL (default).
  %s version    Print the version.

`, mfl.Version, appName, appName)
}

func historyPath() string {
	if p := os.Getenv(histEnvVar); p != "" {
		return p
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, historyFile)
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl() int {
	fmt.Println(banner)

	histPath := historyPath()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := mfl.NewInterpreter()

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			errColor.Fprintln(os.Stderr, err.Error())
			return 1
		}

		code := strings.TrimSpace(line)
		if code == "" {
			continue
		}
		if code == ":quit" {
			return 0
		}

		evalOne(ip, code)
		ln.AppendHistory(code)
	}
}

// evalOne runs one line: parse, interpret command trees, evaluate the rest.
func evalOne(ip *mfl.Interpreter, code string) {
	exp, err := mfl.ParseLine(code)
	if err != nil {
		errColor.Fprintln(os.Stderr, mfl.WrapErrorWithSource(err, code).Error())
		return
	}

	// The parser passes :commands through as marker identifiers; the REPL
	// decides what they mean.
	if id, ok := exp.(*mfl.IdentifierExp); ok && strings.HasPrefix(id.Name, ":") {
		switch id.Name {
		case ":load":
			fmt.Printf("Loading files is not implemented yet.\n")
		default:
			fmt.Printf("unknown command %s. Type :quit to exit.\n", id.Name)
		}
		return
	}

	v, err := ip.Eval(exp, ip.Global)
	if err != nil {
		errColor.Fprintln(os.Stderr, err.Error())
		return
	}
	fmt.Println(mfl.FormatValue(v))
}
