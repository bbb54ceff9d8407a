package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goscol/internal/config"
	"github.com/alexiusacademia/goscol/internal/version"
)

// cfg carries the user defaults file; flag defaults come from here so
// `--help` shows the values that will actually be used.
var cfg = config.LoadOrDefault()

var rootCmd = &cobra.Command{
	Use:   "goscol",
	Short: "Steel Column Compression Check Tool",
	Long: `goscol - Go Steel Column Designer

A CLI tool for checking doubly-symmetric steel columns in axial
compression based on CSA S16:19.

This tool helps structural engineers perform:
  - Factored axial load calculation (NBCC gravity combinations)
  - Factored compressive resistance checks (Clause 13.3.1)
  - Resistance curves over a height range
  - Side-by-side comparison of two candidate sections
  - Step-by-step calculation sheets for review

All resistance calculations follow CSA S16:19 Clause 13.3.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goscol v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Steel Column Designer                                ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for checking doubly-symmetric steel columns in")
		fmt.Println("  axial compression based on CSA S16:19.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Factored axial load from NBCC gravity combinations")
		fmt.Println("    • Compressive resistance per Clause 13.3.1")
		fmt.Println("    • Resistance curves over a height range")
		fmt.Println("    • Two-column section comparison with charts")
		fmt.Println("    • Calculation sheets in the terminal or as PDF")
		fmt.Println()
		fmt.Println("  Use 'goscol --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
