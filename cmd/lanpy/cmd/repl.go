package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/lanpy/internal/tui/repl"
	lplog "github.com/msto63/lanpy/pkg/core/log"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Startet die interaktive Rechner-Sitzung",
	Long: `Startet eine interaktive Sitzung der Rechner-Sprache.

Variablen bleiben zwischen den Eingaben erhalten, Ausdrucks-
anweisungen geben ihren Wert aus.

Tastenkuerzel:
  enter       Eingabe ausführen
  ↑/↓         Verlauf
  PgUp/PgDn   Ausgabe scrollen
  ctrl+l      Ausgabe leeren
  esc         Beenden

Befehle:
  :vars             Variablen anzeigen
  :tokens quelle    Tokens einer Eingabe anzeigen
  :reset            Variablen löschen
  :quit             Beenden`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// stderr output would tear the alternate screen
		logger := newLogger(cmd, cfg)
		if logger.IsLevelEnabled(lplog.LevelInfo) {
			logger = logger.WithLevel(lplog.LevelWarn)
		}

		return repl.Run(logger)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
