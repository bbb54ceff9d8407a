package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goscol/internal/config"
)

var configInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or write the configuration file",
	Long: `Show the resolved configuration: the material and design defaults
applied when a command flag is not given, and the default sweep range.

With --init the resolved configuration is written to the config file
($XDG_CONFIG_HOME/goscol/config.yaml or ~/.config/goscol/config.yaml)
so it can be edited.`,
	Run: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolVar(&configInit, "init", false, "Write the resolved configuration to the config file")
}

func runConfig(cmd *cobra.Command, args []string) {
	path, err := config.Path()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	location := path
	if _, err := os.Stat(path); os.IsNotExist(err) {
		location = path + " (not written yet)"
	}

	fmt.Println()
	fmt.Println("CONFIGURATION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  File:\t%s\n", location)
	fmt.Fprintf(w, "  E:\t%.0f MPa\n", cfg.Defaults.E)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", cfg.Defaults.Fy)
	fmt.Fprintf(w, "  φ:\t%.2f\n", cfg.Defaults.Phi)
	fmt.Fprintf(w, "  n:\t%.2f\n", cfg.Defaults.N)
	fmt.Fprintf(w, "  kx / ky:\t%.2f / %.2f\n", cfg.Defaults.Kx, cfg.Defaults.Ky)
	fmt.Fprintf(w, "  Sweep:\t%.0f to %.0f mm, step %.0f mm\n",
		cfg.Sweep.MinHeight, cfg.Sweep.MaxHeight, cfg.Sweep.Interval)
	w.Flush()
	fmt.Println()

	if configInit {
		if err := cfg.Save(); err != nil {
			fmt.Printf("Error writing config: %v\n", err)
			return
		}
		fmt.Printf("Configuration written to: %s\n", path)
	}
}
