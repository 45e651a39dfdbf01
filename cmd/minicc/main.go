package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SarangNegi/Compiler-Design-Project/pkg/frontend"
	"github.com/SarangNegi/Compiler-Design-Project/pkg/lexer"
	"github.com/SarangNegi/Compiler-Design-Project/pkg/parser"
	"github.com/SarangNegi/Compiler-Design-Project/pkg/semantic"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Dump flags for the individual pipeline stages
var (
	dTokens   bool
	dAst      bool
	dSyntax   bool
	dSemantic bool
	jsonOut   bool
	verbose   bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	// Accept compiler-style single-dash dump flags like -dtokens
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

var dumpFlagNames = []string{"dtokens", "dast", "dsyntax", "dsemantic"}

// normalizeFlags converts single-dash dump flags like -dtokens to --dtokens
// for pflag compatibility
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		for _, flagName := range dumpFlagNames {
			if arg == "-"+flagName {
				result[i] = "--" + flagName
				break
			}
		}
		if result[i] == "" {
			result[i] = arg
		}
	}
	return result
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minicc [file]",
		Short: "minicc analyzes a restricted C subset and emits pseudo three-address code",
		Long: `minicc is an educational compiler front-end. It tokenizes a restricted
C-like subset, builds a flat statement-level syntax tree, runs two
declaration checks, and lowers the tree to an intermediate-code listing.

With no file argument (or "-") the source is read from stdin.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			initLogging(errOut)

			source, err := readSource(cmd, args)
			if err != nil {
				fmt.Fprintf(errOut, "minicc: %v\n", err)
				return err
			}

			switch {
			case dTokens:
				return doTokens(source, out, errOut)
			case dAst:
				return doAst(source, out, errOut)
			case dSyntax:
				return doSyntax(source, out, errOut)
			case dSemantic:
				return doSemantic(source, out, errOut)
			}

			result, err := frontend.Run(source)
			if err != nil {
				if jsonOut {
					return writeJSON(out, map[string]string{"error": err.Error()})
				}
				fmt.Fprintf(errOut, "minicc: %v\n", err)
				return err
			}

			slog.Debug("analysis complete",
				"tokens", len(result.Tokens),
				"syntaxErrors", len(result.SyntaxErrors),
				"semanticErrors", len(result.SemanticErrors),
				"intermediateCode", len(result.IntermediateCode))

			if jsonOut {
				return writeJSON(out, result)
			}

			for _, msg := range result.SyntaxErrors {
				fmt.Fprintln(errOut, msg)
			}
			for _, msg := range result.SemanticErrors {
				fmt.Fprintln(errOut, msg)
			}
			for _, line := range result.IntermediateCode {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().BoolVar(&dTokens, "dtokens", false, "Dump the token sequence and exit")
	rootCmd.Flags().BoolVar(&dAst, "dast", false, "Dump the syntax tree and exit")
	rootCmd.Flags().BoolVar(&dSyntax, "dsyntax", false, "Dump syntax errors and exit")
	rootCmd.Flags().BoolVar(&dSemantic, "dsemantic", false, "Dump semantic errors and exit")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the full analysis result as JSON")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func initLogging(errOut io.Writer) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level})))
}

// readSource loads the positional file argument, or stdin for "-"/no arg
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// doTokens dumps the token sequence, one "TYPE literal" line each
func doTokens(source string, out, errOut io.Writer) error {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		fmt.Fprintf(errOut, "minicc: %v\n", err)
		return err
	}
	for _, tok := range tokens {
		fmt.Fprintf(out, "%-8s %s\n", tok.Type, tok.Literal)
	}
	return nil
}

// doAst dumps the parsed statement list; syntax errors go to errOut
func doAst(source string, out, errOut io.Writer) error {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		fmt.Fprintf(errOut, "minicc: %v\n", err)
		return err
	}
	p := parser.New(tokens)
	for _, stmt := range p.Parse() {
		fmt.Fprintln(out, stmt)
	}
	for _, msg := range p.Errors() {
		fmt.Fprintln(errOut, msg)
	}
	return nil
}

// doSyntax dumps the syntax error list only
func doSyntax(source string, out, errOut io.Writer) error {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		fmt.Fprintf(errOut, "minicc: %v\n", err)
		return err
	}
	p := parser.New(tokens)
	p.Parse()
	for _, msg := range p.Errors() {
		fmt.Fprintln(out, msg)
	}
	return nil
}

// doSemantic dumps the semantic error list only
func doSemantic(source string, out, errOut io.Writer) error {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		fmt.Fprintf(errOut, "minicc: %v\n", err)
		return err
	}
	p := parser.New(tokens)
	stmts := p.Parse()
	for _, msg := range semantic.NewAnalyzer().Analyze(stmts) {
		fmt.Fprintln(out, msg)
	}
	return nil
}
