// snake is a single-player grid snake game played in the terminal.
//
// Usage:
//
//	snake                    - Play with the default configuration
//	snake play               - Same as above
//	snake defaults           - Print the embedded default configuration
//	snake defaults glyphs    - Print the embedded default glyph set
//	snake version            - Print version information
//
// Global flags:
//
//	--config <path>     - Custom YAML config (default search: ~/.snake, ./configs)
//	--seed <value>      - RNG seed for reproducible food placement (0 = time based)
//	--fps <rate>        - Frame rate for input polling and rendering
//	--food <policy>     - Food placement policy: free or uniform
//	--log-file <path>   - Write logs to a file (logs are discarded otherwise)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagFood     string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake steers a growing line of cells around a walled board.
Eat food to grow and score; hitting a wall or your own body ends the round.

Controls:
  Arrows/WASD/hjkl - Turn
  Enter/R          - Restart (after game over)
  Q/Esc/Ctrl+C     - Quit

Examples:
  snake
  snake --seed 42 --food uniform
  snake --config ./my-snake.yaml --log-file snake.log
  snake defaults > ~/.snake/config.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "snake %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (overrides config frame_rate)")
	rootCmd.PersistentFlags().StringVar(&flagFood, "food", "", "Food policy: free or uniform (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(versionCmd)
}
