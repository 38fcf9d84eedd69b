// Package main provides the CLI entry point for scalaparse.
//
// Usage:
//
//	scalaparse parse [-dialect scala3] [-config overrides.yaml] input.scala
//	scalaparse repl [-dialect ammonite]
//
// Flags go before the input file: flag parsing stops at the first non-flag
// argument.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/langkit/scalaparse/dialect"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "parse", "p":
		if err := runParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "repl":
		if err := runRepl(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		printVersion()
	default:
		if err := runParse(os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printUsage() {
	fmt.Println(`scalaparse - a standalone recursive-descent parser for Scala-family source

Usage:
  scalaparse parse [-dialect <name>] [-config <overrides.yaml>] [-entry <entry>] <input.scala>
  scalaparse repl [-dialect <name>]
  scalaparse help
  scalaparse version

Commands:
  parse, p    Parse a file and print its top-level nodes or diagnostics
  repl        Interactive REPL over Ammonite-style multi-chunk input
  help        Show this help message
  version     Show version information

Options:
  -dialect    Built-in dialect preset: scala211, scala212, scala213, scala3, sbt, ammonite (default scala3 for parse, ammonite for repl)
  -config     Project-local YAML dialect override, applied on top of -dialect
  -entry      Entry point to run: source (default), stat, term, type, pattern`)
}

func printVersion() {
	fmt.Println("scalaparse version 0.1.0")
}

// loadDialect resolves the -dialect/-config pair shared by every subcommand.
func loadDialect(presetName, configPath string) (dialect.Dialect, error) {
	d, err := dialect.Preset(presetName)
	if err != nil {
		return dialect.Dialect{}, err
	}
	if configPath == "" {
		return d, nil
	}
	doc, err := os.ReadFile(configPath)
	if err != nil {
		return dialect.Dialect{}, fmt.Errorf("reading dialect override %s: %w", configPath, err)
	}
	return dialect.LoadOverride(d, doc)
}

func runParse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	dialectName := fs.String("dialect", "scala3", "dialect preset name")
	configPath := fs.String("config", "", "project-local dialect override (YAML)")
	entry := fs.String("entry", "source", "entry point: source, stat, term, type, pattern")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing input file")
	}
	inputPath := fs.Arg(0)

	text, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", inputPath, err)
	}

	d, err := loadDialect(*dialectName, *configPath)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(inputPath)
	if err != nil {
		abs = inputPath
	}

	result, sink := parseEntry(*entry, string(text), abs, d)
	if sink.HasErrors() {
		for _, diag := range sink.Errors() {
			fmt.Fprintln(os.Stderr, diag.String())
		}
		return fmt.Errorf("parse failed with %d error(s)", len(sink.Errors()))
	}
	dumpNode(os.Stdout, result, 0)
	return nil
}

func runRepl(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	dialectName := fs.String("dialect", "ammonite", "dialect preset name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	d, err := loadDialect(*dialectName, "")
	if err != nil {
		return err
	}
	return runReplLoop(d)
}
