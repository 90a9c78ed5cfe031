package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

func main() {
	var (
		schemaName  = flag.String("schema", "", "Schema to decode with")
		hexInput    = flag.String("hex", "", "Input bytes as hex (spaces allowed)")
		inFile      = flag.String("in", "", "Read input bytes from a file")
		list        = flag.Bool("list", false, "List built-in schemas and exit")
		demo        = flag.Bool("demo", false, "Encode and dump the schema's sample value")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	schemas := buildSchemas()

	if *list {
		for _, s := range schemas {
			fmt.Printf("  %-10s %s\n", s.name, s.description)
		}
		return
	}

	if *interactive {
		if err := runInteractive(schemas); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *schemaName == "" {
		fmt.Fprintln(os.Stderr, "Usage: binspect -schema <name> [-hex bytes | -in file]")
		fmt.Fprintln(os.Stderr, "       binspect -schema <name> -demo")
		fmt.Fprintln(os.Stderr, "       binspect -list")
		fmt.Fprintln(os.Stderr, "       binspect -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(schemas, *schemaName, *hexInput, *inFile, *demo); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(schemas []schema, schemaName, hexInput, inFile string, demo bool) error {
	s, ok := findSchema(schemas, schemaName)
	if !ok {
		return fmt.Errorf("unknown schema %q (use -list)", schemaName)
	}

	var data []byte
	switch {
	case demo:
		out, err := s.sample()
		if err != nil {
			return fmt.Errorf("encode sample: %w", err)
		}
		data = out
	case hexInput != "":
		cleaned := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\t' {
				return -1
			}
			return r
		}, hexInput)
		out, err := hex.DecodeString(cleaned)
		if err != nil {
			return fmt.Errorf("parse hex: %w", err)
		}
		data = out
	case inFile != "":
		out, err := os.ReadFile(inFile)
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}
		data = out
	default:
		return fmt.Errorf("no input: use -hex, -in, or -demo")
	}

	heading := func(s string) string { return s }
	if term.IsTerminal(int(os.Stdout.Fd())) {
		heading = func(s string) string { return titleStyle.Render(s) }
	}

	fmt.Printf("%s %s (%d bytes)\n\n", heading("Schema:"), s.name, len(data))
	fmt.Println(hexDump(data))

	rendered, err := s.decode(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Println(rendered)
	return nil
}
