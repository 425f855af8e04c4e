package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the embedded default configuration",
	Long: `Print the built-in configuration as YAML. Redirect it to a file to
start a custom config:

  snake defaults > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}

var defaultGlyphsCmd = &cobra.Command{
	Use:   "glyphs",
	Short: "Print the embedded default glyph set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(assets.DefaultGlyphsYAML())
		return err
	},
}

func init() {
	defaultsCmd.AddCommand(defaultGlyphsCmd)
}
