// ============================================================================
// lanpy - Lexer & Parser Toolkit
// ============================================================================
//
// Package:     cmd
// Description: CLI command running calculator programs
// Author:      Mike Stoffels
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/lanpy/internal/calc"
	lplog "github.com/msto63/lanpy/pkg/core/log"
)

var (
	runExpr string
	runEcho bool
)

var runCmd = &cobra.Command{
	Use:   "run [datei|-]",
	Short: "Führt ein Rechner-Programm aus",
	Long: `Führt ein Programm der eingebauten Rechner-Sprache aus.

Sprache:
  let name = ausdruck;   Variable anlegen
  name = ausdruck;       Variable ändern
  print ausdruck;        Wert ausgeben
  ausdruck;              Ausdruck auswerten (mit --echo ausgeben)

Ausdrücke kennen + - * /, Klammern, Vorzeichen, Zahlen, Variablen
und Zeichenketten in doppelten Anführungszeichen.

Beispiele:
  lanpy run programm.calc
  lanpy run -e 'print (1 + 2) * 3;'
  cat programm.calc | lanpy run -v`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runExpr, "expr", "e", "", "Programm direkt angeben")
	runCmd.Flags().BoolVar(&runEcho, "echo", false, "Werte von Ausdrucksanweisungen ausgeben")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	jobID := uuid.New().String()
	logger := newLogger(cmd, cfg).
		WithRequestID(jobID).
		WithFields(lplog.Fields{
			"source": sourceName(args, runExpr),
			"echo":   runEcho,
		})

	source, err := readSource(cmd, args, runExpr)
	if err != nil {
		return err
	}

	timer := logger.StartTimer("run").WithField("source_length", len(source))
	interp := calc.New(cmd.OutOrStdout()).WithLogger(logger).WithEcho(runEcho)

	if err := interp.Run(source); err != nil {
		timer.StopWithError(err)
		return err
	}

	timer.WithField("variables", len(interp.Variables())).Stop()
	logger.Debug("program finished", lplog.Fields{"job_id": jobID})
	return nil
}
