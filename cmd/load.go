package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goscol/internal/nbcc"
)

var (
	// Unfactored axial loads (N)
	loadDead       float64
	loadLive       float64
	loadSnow       float64
	loadWind       float64
	loadEarthquake float64

	// Options
	showAll bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Calculate the factored axial load using NBCC gravity combinations",
	Long: `Calculate the governing factored axial load (Cf) from the NBCC 2015
principal gravity load combinations.

Provide unfactored loads from different load types and this command will
compute the factored load for every combination in the gravity set.

Load Types:
  D - Dead load
  L - Live load
  S - Snow load
  W - Wind load (carried but not factored by the gravity set)
  E - Earthquake load (carried but not factored by the gravity set)

Examples:
  # Simple gravity loads (dead + live)
  goscol load --dead 820000 --live 1045100

  # With snow
  goscol load --dead 820000 --live 1045100 --snow 150000

  # Show all combinations
  goscol load --dead 820000 --live 1045100 --all`,
	Run: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	// Unfactored load flags
	loadCmd.Flags().Float64VarP(&loadDead, "dead", "d", 0, "Unfactored dead load (N)")
	loadCmd.Flags().Float64VarP(&loadLive, "live", "l", 0, "Unfactored live load (N)")
	loadCmd.Flags().Float64VarP(&loadSnow, "snow", "s", 0, "Unfactored snow load (N)")
	loadCmd.Flags().Float64VarP(&loadWind, "wind", "w", 0, "Unfactored wind load (N)")
	loadCmd.Flags().Float64VarP(&loadEarthquake, "earthquake", "e", 0, "Unfactored earthquake load (N)")

	// Options
	loadCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
}

func runLoad(cmd *cobra.Command, args []string) {
	loads := nbcc.Load{
		D: loadDead,
		L: loadLive,
		S: loadSnow,
		W: loadWind,
		E: loadEarthquake,
	}

	// Check if any load is provided
	if loads.D == 0 && loads.L == 0 && loads.S == 0 && loads.W == 0 && loads.E == 0 {
		fmt.Println("Error: Please provide at least one unfactored load.")
		fmt.Println("Use 'goscol load --help' for usage information.")
		return
	}

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          NBCC 2015 FACTORED AXIAL LOAD CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Print input loads
	fmt.Println("UNFACTORED LOADS (N):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if loads.D != 0 {
		fmt.Fprintf(w, "  Dead Load (D):\t%.2f\n", loads.D)
	}
	if loads.L != 0 {
		fmt.Fprintf(w, "  Live Load (L):\t%.2f\n", loads.L)
	}
	if loads.S != 0 {
		fmt.Fprintf(w, "  Snow Load (S):\t%.2f\n", loads.S)
	}
	if loads.W != 0 {
		fmt.Fprintf(w, "  Wind Load (W):\t%.2f\n", loads.W)
	}
	if loads.E != 0 {
		fmt.Fprintf(w, "  Earthquake Load (E):\t%.2f\n", loads.E)
	}
	w.Flush()
	fmt.Println()

	// Calculate governing load
	maxCf, governingCombo := nbcc.Governing(loads)

	if showAll {
		// Show all combinations
		fmt.Println("LOAD COMBINATIONS (NBCC 2015 Table 4.1.3.2-A, gravity set):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tCf (N)\n")
		fmt.Fprintf(w, "  ─\t───────────\t──────\n")

		for _, combo := range nbcc.GravityCombinations {
			cf := combo.Factored(loads)
			marker := ""
			if combo.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, cf, marker)
		}
		w.Flush()
		fmt.Println()
	}

	if loads.W != 0 || loads.E != 0 {
		fmt.Println("  Note: wind and earthquake loads are not factored by the")
		fmt.Println("  gravity combination set and do not affect this result.")
		fmt.Println()
	}

	// Print result
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governingCombo.ID, governingCombo.Description)
	fmt.Println()
	fmt.Printf("  ╔═════════════════════════════════════╗\n")
	fmt.Printf("  ║  FACTORED AXIAL LOAD (Cf) = %.2f N  \n", maxCf)
	fmt.Printf("  ╚═════════════════════════════════════╝\n")
	fmt.Println()
}
