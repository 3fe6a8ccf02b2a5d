// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     cmd
// Description: Root command and shared helpers of the lanpy CLI
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/lanpy/internal/calc"
	"github.com/msto63/lanpy/pkg/core/config"
	lperror "github.com/msto63/lanpy/pkg/core/error"
	lplog "github.com/msto63/lanpy/pkg/core/log"
	"github.com/msto63/lanpy/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "lanpy",
	Short: "lanpy - Lexer & Parser Toolkit",
	Long: `lanpy ist ein kleines Toolkit für lexikalische Analyse und
erweiterbares Parsen mit rekursivem Abstieg.

Die Operator- und Schlüsselworttabellen des Lexers kommen aus einer
Grammatik-Datei (TOML oder YAML). Ohne Datei werden die Tabellen der
eingebauten Rechner-Sprache verwendet.

Befehle:
  tokenize  - Quelltext in Tokens zerlegen
  run       - Rechner-Programm ausführen
  repl      - Interaktive Rechner-Sitzung
  version   - Versionsinformationen`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and reports errors on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Grammatik-Datei (default: $LANPY_CONFIG, ./lanpy.toml, ./configs/lanpy.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug-Ausgaben auf stderr")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log-Format (text, json, console)")
}

// loadConfig resolves the grammar configuration: an explicit --config file,
// then the environment and default locations, then the calculator tables.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		if lperror.HasCode(err, lperror.CodeMissingConfig) && os.Getenv(config.EnvVar) == "" {
			return calc.Config(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the command logger from the [log] section and the flags.
// It also becomes the package default, so passes run without an explicit
// logger follow the command line settings.
func newLogger(cmd *cobra.Command, cfg *config.Config) *lplog.Logger {
	lc := logging.FromConfig(cmd.Name(), cfg.Log)
	if verbose {
		lc.Level = lplog.LevelDebug.String()
	}
	if logFormat != "" {
		lc.Format = logFormat
	}
	lc.Output = cmd.ErrOrStderr()

	logger := logging.NewLogger(lc)
	lplog.SetDefault(logger)
	return logger
}

// readSource reads the program from the file in args, or from stdin when
// args is empty or "-". An inline expression takes precedence over both.
func readSource(cmd *cobra.Command, args []string, inline string) (string, error) {
	if inline != "" {
		return inline, nil
	}

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", lperror.Wrap(err, "failed to read stdin").
				WithCode(lperror.CodeInvalidInput).
				WithOperation("cmd.readSource")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		code := lperror.CodeInvalidInput
		if os.IsNotExist(err) {
			code = lperror.CodeNotFound
		}
		return "", lperror.Wrap(err, "failed to read source file").
			WithCode(code).
			WithOperation("cmd.readSource").
			WithDetail("filePath", args[0])
	}
	return string(data), nil
}

// sourceName describes where readSource takes the program from
func sourceName(args []string, inline string) string {
	switch {
	case inline != "":
		return "inline"
	case len(args) == 0 || args[0] == "-":
		return "stdin"
	default:
		return args[0]
	}
}

func printError(w io.Writer, err error) {
	msg := err.Error()
	if code := lperror.GetCode(err); code != lperror.CodeUnknown {
		msg += " [" + code.String() + "]"
	}
	fmt.Fprintf(w, "Fehler: %s\n", strings.TrimSpace(msg))
}
