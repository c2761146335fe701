// queenchase is a terminal maze chase: guide the King across a board of
// opening pits and rising walls to reach the Queen.
//
// Usage:
//
//	queenchase list              - List game variants
//	queenchase play [variant]    - Play (menu when no variant is given)
//	queenchase serve             - Start SSH server for remote play
//	queenchase config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible hazards
//	--config <path>    - Custom config YAML
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/queenchase/internal/games/chase"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "queenchase",
	Short: "Queen Chase - reach the Queen before the floor gives way",
	Long: `Queen Chase is a terminal game on a 10x10 board. Pits open every
seven seconds and walls rise and sink in a steady cycle. Steer the King
from the near corner to the Queen in the far corner.

Available commands:
  list     - Show the game variants
  play     - Play locally
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  queenchase play
  queenchase play chase_hard
  queenchase play --difficulty hard --seed 42
  queenchase serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
