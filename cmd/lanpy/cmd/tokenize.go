// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     cmd
// Description: CLI command printing the token stream of a source
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/lanpy/internal/tui/repl"
	"github.com/msto63/lanpy/pkg/token"
)

var (
	tokenizeExpr  string
	tokenizePlain bool
	tokenizeJSON  bool
	tokenizeNoEOF bool
)

var tokenizeCmd = &cobra.Command{
	Use:     "tokenize [datei|-]",
	Aliases: []string{"lex", "tokens"},
	Short:   "Zerlegt Quelltext in Tokens",
	Long: `Zerlegt Quelltext mit den Tabellen der Grammatik-Datei in Tokens.

Ohne Datei oder mit "-" wird von stdin gelesen. Die Ausgabe ist
standardmäßig eine Tabelle, mit --plain eine Zeile pro Token.

Beispiele:
  lanpy tokenize programm.calc
  lanpy tokenize -e 'let x = 1 + 2;'
  lanpy tokenize --config grammar.yaml --plain quelle.txt
  echo 'print 42;' | lanpy tokenize --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)

	tokenizeCmd.Flags().StringVarP(&tokenizeExpr, "expr", "e", "", "Quelltext direkt angeben")
	tokenizeCmd.Flags().BoolVarP(&tokenizePlain, "plain", "p", false, "Eine Zeile pro Token statt Tabelle")
	tokenizeCmd.Flags().BoolVar(&tokenizeJSON, "json", false, "Ausgabe als JSON")
	tokenizeCmd.Flags().BoolVar(&tokenizeNoEOF, "no-eof", false, "Kein abschließendes EOF-Token anzeigen")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	source, err := readSource(cmd, args, tokenizeExpr)
	if err != nil {
		return err
	}

	tokens, err := cfg.Tokenize(source, logger)
	if err != nil {
		return err
	}
	if !tokenizeNoEOF {
		tokens = append(tokens, token.EOFToken)
	}

	out := cmd.OutOrStdout()
	switch {
	case tokenizeJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(tokens)
	case tokenizePlain:
		for _, tok := range tokens {
			fmt.Fprintln(out, tok)
		}
	default:
		fmt.Fprintln(out, repl.RenderTokens(tokens))
	}
	return nil
}
