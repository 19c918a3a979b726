// Package main implements the smc compiler entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/you-not-fish/smc/internal/codegen"
	"github.com/you-not-fish/smc/internal/postfix"
	"github.com/you-not-fish/smc/internal/syntax"
	"github.com/you-not-fish/smc/internal/translate"
)

// Compiler flags
var (
	emitTokens  = flag.Bool("emit-tokens", false, "Output token stream")
	tokenFormat = flag.String("token-format", "text", "Token output format (text or json)")
	emitSymbols = flag.Bool("emit-symbols", false, "Output symbol table")
	emitListing = flag.Bool("emit-listing", false, "Output numbered instruction listing")
	verifyOnly  = flag.Bool("verify", false, "Compile and check the program without writing output")
	postfixExpr = flag.String("postfix", "", "Translate an infix integer expression to postfix and evaluate it")
	output      = flag.String("o", "", "Output file (default: input with $SMC_OUTPUT_EXT)")
	watch       = flag.Bool("watch", false, "Recompile whenever the input file is written")
	verbose     = flag.Bool("v", false, "Output timing trace (default: $SMC_VERBOSE)")
	version     = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.3.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Stack Machine Compiler %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: smc [options] <file.src>\n")
		fmt.Fprintf(os.Stderr, "       smc -postfix <expression>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("smc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	if *postfixExpr != "" {
		os.Exit(runPostfix(*postfixExpr))
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: smc [options] <file.src>")
		os.Exit(1)
	}

	filename := args[0]
	cfg := loadConfig()
	if isFlagSet("v") {
		cfg.verbose = *verbose
	}

	if *emitTokens {
		os.Exit(runEmitTokens(filename, *tokenFormat))
	}

	if *emitSymbols {
		os.Exit(runEmitSymbols(filename))
	}

	if *emitListing {
		os.Exit(runEmitListing(filename))
	}

	if *verifyOnly {
		os.Exit(runVerify(filename, cfg))
	}

	out := *output
	if out == "" {
		out = outputPath(filename, cfg.outputExt)
	}

	if *watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		os.Exit(runWatch(ctx, filename, out, cfg))
	}

	os.Exit(runCompile(filename, out, cfg))
}

// isFlagSet reports whether the named flag was given on the command line.
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// outputPath derives the program file name from the source file name.
func outputPath(filename, ext string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ext
}

// runCompile compiles filename into out and returns an exit code.
func runCompile(filename, out string, cfg config) int {
	tr := newTracer(os.Stderr, cfg.verbose)
	tr.phase("start", "%s -> %s", filename, out)

	if _, err := translate.CompileFile(filename, out, tr.config(out)); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		return 1
	}
	tr.done()
	return 0
}

// runVerify compiles and checks filename without writing any output.
func runVerify(filename string, cfg config) int {
	tr := newTracer(os.Stderr, cfg.verbose)

	res, err := translate.CheckFile(filename, tr.config(""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		return 1
	}
	tr.done()

	fmt.Printf("%s: ok (%d instructions, %d labels)\n", filename, res.Program.Len(), res.Labels)
	return 0
}

// runEmitSymbols compiles filename and prints its symbol table.
func runEmitSymbols(filename string) int {
	res, err := translate.CheckFile(filename, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		return 1
	}

	fmt.Print(res.Symbols)
	return 0
}

// runEmitListing compiles filename and prints the numbered program.
func runEmitListing(filename string) int {
	res, err := translate.CheckFile(filename, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		return 1
	}

	codegen.Print(res.Program)
	return 0
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename, format string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	s := syntax.NewScanner(filename, f)
	if err := s.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	var toks []syntax.Token
	var errors []string
	for {
		tok := s.Next()
		toks = append(toks, tok)

		switch {
		case tok.Kind == syntax.Invalid:
			errors = append(errors, fmt.Sprintf("%s: invalid token '%s'", tok.Pos, tok.Lit))
		case tok.Err != nil:
			errors = append(errors, fmt.Sprintf("%s: invalid literal '%s'", tok.Pos, tok.Lit))
		}

		if tok.Kind == syntax.EOF {
			break
		}
	}

	switch format {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, toks); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		if len(errors) > 0 {
			return 1
		}
		return 0
	case "text":
	default:
		fmt.Fprintf(os.Stderr, "error: unknown token format %q\n", format)
		return 1
	}

	// Print header
	fmt.Printf("%-20s %-22s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-22s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 22), strings.Repeat("-", 20))

	for _, tok := range toks {
		fmt.Printf("%-20s %-22s %s\n", tok.Pos, tok.Kind, formatLiteral(tok.Lit))
	}

	// Print any errors
	if len(errors) > 0 {
		fmt.Println()
		fmt.Println("Errors:")
		for _, e := range errors {
			fmt.Printf("  %s\n", e)
		}
		return 1
	}

	return 0
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}

// runPostfix translates expr to postfix notation and evaluates it.
func runPostfix(expr string) int {
	pf, v, err := postfix.Run(expr)
	if pf != "" {
		fmt.Printf("postfix: %s\n", pf)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Printf("value:   %d\n", v)
	return 0
}
