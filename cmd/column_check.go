package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goscol/internal/calcsheet"
	"github.com/alexiusacademia/goscol/internal/column"
	"github.com/alexiusacademia/goscol/internal/curve"
	"github.com/alexiusacademia/goscol/internal/diagram"
	"github.com/alexiusacademia/goscol/internal/nbcc"
	"github.com/alexiusacademia/goscol/internal/report"
)

var (
	// Column definition
	checkTag    string
	checkFile   string
	checkHeight float64
	checkArea   float64
	checkIx     float64
	checkIy     float64
	checkKx     float64
	checkKy     float64
	checkE      float64
	checkFy     float64

	// Design parameters
	checkN   float64
	checkPhi float64

	// Unfactored loads (N)
	checkDead       float64
	checkLive       float64
	checkSnow       float64
	checkWind       float64
	checkEarthquake float64

	// Output options
	checkShowCalc    bool
	checkShowDiagram bool
	checkExportFile  string
	checkPDFFile     string
	checkProject     string
)

var columnCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a full compression check for one column",
	Long: `Check a doubly-symmetric steel column in axial compression per
CSA S16:19 Clause 13.3.1 and the NBCC gravity load combinations.

The column is defined either by flags or by a JSON file (--file).
When a file is used the geometry, material and load flags are ignored;
--n and --phi still apply.

The shape parameter n reflects the fabrication method:
  1.34 - hot-rolled, fabricated structural sections and HSS
  2.24 - welded three-plate members with flame-cut flange edges

Examples:
  # W310x97 storey column carrying dead + live load
  goscol column check --height 3250 --area 16500 --ix 308e6 --iy 100e6 \
      --fy 345 --dead 820000 --live 1045100

  # From a JSON definition, with the calculation sheet
  goscol column check --file column.json --calc

  # Welded three-plate section, export the calc sheet as PDF
  goscol column check --file column.json --n 2.24 --pdf check.pdf`,
	Run: runColumnCheck,
}

func init() {
	columnCmd.AddCommand(columnCheckCmd)

	// Definition flags
	columnCheckCmd.Flags().StringVarP(&checkTag, "tag", "t", "C1", "Column tag for the report")
	columnCheckCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Load the column definition from a JSON file")
	columnCheckCmd.Flags().Float64Var(&checkHeight, "height", 0, "Unsupported column height (mm) [required unless --file]")
	columnCheckCmd.Flags().Float64VarP(&checkArea, "area", "a", 0, "Cross-sectional area (mm²) [required unless --file]")
	columnCheckCmd.Flags().Float64Var(&checkIx, "ix", 0, "Moment of inertia about x-x (mm⁴) [required unless --file]")
	columnCheckCmd.Flags().Float64Var(&checkIy, "iy", 0, "Moment of inertia about y-y (mm⁴) [required unless --file]")
	columnCheckCmd.Flags().Float64Var(&checkKx, "kx", cfg.Defaults.Kx, "Effective length factor, x-x axis")
	columnCheckCmd.Flags().Float64Var(&checkKy, "ky", cfg.Defaults.Ky, "Effective length factor, y-y axis")
	columnCheckCmd.Flags().Float64Var(&checkE, "e", cfg.Defaults.E, "Modulus of elasticity (MPa)")
	columnCheckCmd.Flags().Float64Var(&checkFy, "fy", cfg.Defaults.Fy, "Steel yield stress (MPa)")

	// Design parameters
	columnCheckCmd.Flags().Float64VarP(&checkN, "n", "n", cfg.Defaults.N, "Shape parameter for the fabrication method")
	columnCheckCmd.Flags().Float64Var(&checkPhi, "phi", cfg.Defaults.Phi, "Steel resistance factor φ")

	// Load flags
	columnCheckCmd.Flags().Float64VarP(&checkDead, "dead", "d", 0, "Unfactored dead load (N)")
	columnCheckCmd.Flags().Float64VarP(&checkLive, "live", "l", 0, "Unfactored live load (N)")
	columnCheckCmd.Flags().Float64VarP(&checkSnow, "snow", "s", 0, "Unfactored snow load (N)")
	columnCheckCmd.Flags().Float64VarP(&checkWind, "wind", "w", 0, "Unfactored wind load (N)")
	columnCheckCmd.Flags().Float64Var(&checkEarthquake, "earthquake", 0, "Unfactored earthquake load (N)")

	// Output options
	columnCheckCmd.Flags().BoolVar(&checkShowCalc, "calc", false, "Show the step-by-step calculation sheet")
	columnCheckCmd.Flags().BoolVar(&checkShowDiagram, "diagram", false, "Show an ASCII resistance curve around the check height (assumes kx = ky = 1)")
	columnCheckCmd.Flags().StringVarP(&checkExportFile, "output", "o", "", "Export the resistance curve with the check point marked (png, svg, pdf)")
	columnCheckCmd.Flags().StringVar(&checkPDFFile, "pdf", "", "Write the calculation sheet to a PDF file")
	columnCheckCmd.Flags().StringVar(&checkProject, "project", "", "Project name printed on the PDF calculation sheet")
}

func runColumnCheck(cmd *cobra.Command, args []string) {
	var sc *column.SteelColumn

	if checkFile != "" {
		loaded, err := column.LoadFromFile(checkFile)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		sc = loaded
		if cmd.Flags().Changed("phi") {
			sc.Phi = checkPhi
		}
	} else {
		if checkHeight <= 0 || checkArea <= 0 || checkIx <= 0 || checkIy <= 0 {
			fmt.Println("Error: height, area, ix and iy are required (or use --file).")
			fmt.Println("Use 'goscol column check --help' for usage information.")
			return
		}
		sc = column.NewSteelColumn(checkTag, column.Column{
			Height: checkHeight,
			Area:   checkArea,
			Ix:     checkIx,
			Iy:     checkIy,
			Kx:     checkKx,
			Ky:     checkKy,
			E:      checkE,
		}, checkFy, nbcc.Load{
			D: checkDead,
			L: checkLive,
			S: checkSnow,
			W: checkWind,
			E: checkEarthquake,
		})
		sc.Phi = checkPhi
	}

	result, err := sc.Check(checkN)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	hasLoads := sc.Loads != (nbcc.Load{})

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     STEEL COLUMN COMPRESSION CHECK - CSA S16:19")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Column Tag:\t%s\n", sc.Tag)
	fmt.Fprintf(w, "  Height (L):\t%.0f mm\n", sc.Height)
	fmt.Fprintf(w, "  Area (A):\t%.0f mm²\n", sc.Area)
	fmt.Fprintf(w, "  Ix:\t%.4g mm⁴\n", sc.Ix)
	fmt.Fprintf(w, "  Iy:\t%.4g mm⁴\n", sc.Iy)
	fmt.Fprintf(w, "  kx / ky:\t%.2f / %.2f\n", sc.Kx, sc.Ky)
	fmt.Fprintf(w, "  E:\t%.0f MPa\n", sc.E)
	fmt.Fprintf(w, "  fy:\t%.1f MPa\n", sc.Fy)
	fmt.Fprintf(w, "  φ:\t%.2f\n", sc.Phi)
	fmt.Fprintf(w, "  n:\t%.2f\n", result.N)
	w.Flush()
	fmt.Println()

	// Section properties
	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Radius of gyration (r_x):\t%.2f mm\n", result.Rx)
	fmt.Fprintf(w, "  Radius of gyration (r_y):\t%.2f mm\n", result.Ry)
	fmt.Fprintf(w, "  Euler buckling load (P_Ex):\t%.4g N\n", result.Resistance.PEx)
	fmt.Fprintf(w, "  Euler buckling load (P_Ey):\t%.4g N\n", result.Resistance.PEy)
	w.Flush()
	fmt.Println()

	// Resistance
	fmt.Println("RESISTANCE (Clause 13.3.1):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Buckling stress (F_ex):\t%.2f MPa\n", result.Resistance.FEx)
	fmt.Fprintf(w, "  Buckling stress (F_ey):\t%.2f MPa\n", result.Resistance.FEy)
	fmt.Fprintf(w, "  Governing stress (F_e):\t%.2f MPa\n", result.Resistance.Fe)
	fmt.Fprintf(w, "  Governing axis:\t%s\n", result.Resistance.GoverningAxis())
	fmt.Fprintf(w, "  Slenderness (λ):\t%.4f\n", result.Resistance.Lambda)
	fmt.Fprintf(w, "  Resistance (Pr):\t%.4g N\n", result.Resistance.Pr)
	w.Flush()
	fmt.Println()

	// Step-by-step sheet
	if checkShowCalc {
		fmt.Println("CALCULATION SHEET:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		d, _ := calcsheet.PrAtHeight(sc.Area, sc.Ix, sc.Iy, sc.Kx, sc.Ky, sc.Height, sc.E, sc.Fy, result.N, sc.Phi)
		fmt.Println(d.Text())
	}

	// Factored load
	if hasLoads {
		fmt.Println("FACTORED LOAD (NBCC gravity combinations):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\tCf (N)\n")
		fmt.Fprintf(w, "  ─\t───────────\t──────\n")
		for _, combo := range nbcc.GravityCombinations {
			marker := ""
			if combo.ID == result.Governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.Factored(sc.Loads), marker)
		}
		w.Flush()
		fmt.Println()

		if sc.Loads.W != 0 || sc.Loads.E != 0 {
			fmt.Println("  Note: wind and earthquake loads are not factored by the")
			fmt.Println("  gravity combination set and do not affect this result.")
			fmt.Println()
		}
	}

	// Check result
	fmt.Println("CHECK RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	lines := []string{
		fmt.Sprintf("Pr  = %s N", calcsheet.FormatNumber(result.Resistance.Pr)),
	}
	if hasLoads {
		lines = append(lines,
			fmt.Sprintf("Cf  = %s N", calcsheet.FormatNumber(result.Cf)),
			fmt.Sprintf("DCR = %.3f", result.DCR),
		)
	}
	fmt.Print(diagram.SummaryBox(fmt.Sprintf("COLUMN %s", sc.Tag), lines))
	fmt.Println()
	if hasLoads {
		fmt.Printf("  Status: %s\n", result.Message)
	} else {
		fmt.Println("  Status: no loads given; resistance reported without a check")
	}
	fmt.Println()

	// Show diagram if requested
	if checkShowDiagram {
		c := checkSweep(sc)
		fmt.Println(diagram.PlotCurve(c, 12))
		fmt.Println()
	}

	// Export chart if requested
	if checkExportFile != "" {
		c := checkSweep(sc)
		markers := []diagram.Marker{{
			Height:     sc.Height,
			Resistance: result.Resistance.Pr,
			Label:      sc.Tag,
		}}
		if err := diagram.ExportCurve(c, markers, checkExportFile); err != nil {
			fmt.Printf("Error exporting chart: %v\n", err)
		} else {
			fmt.Printf("Chart exported to: %s\n", checkExportFile)
		}
	}

	// Write PDF calc sheet if requested
	if checkPDFFile != "" {
		d, _ := calcsheet.PrAtHeight(sc.Area, sc.Ix, sc.Iy, sc.Kx, sc.Ky, sc.Height, sc.E, sc.Fy, result.N, sc.Phi)
		sheet := report.CalcSheet{
			Project:    checkProject,
			Column:     sc.Tag,
			Derivation: d,
			Summary:    summaryLines(result, hasLoads),
		}
		if err := report.SaveCalcSheet(checkPDFFile, sheet); err != nil {
			fmt.Printf("Error writing PDF: %v\n", err)
		} else {
			fmt.Printf("Calculation sheet written to: %s\n", checkPDFFile)
		}
	}
}

// checkSweep builds the illustrative resistance curve around the check
// height, from a quarter of the height to twice the height.
func checkSweep(sc *column.SteelColumn) curve.Curve {
	section := curve.Section{Area: sc.Area, Ix: sc.Ix, Iy: sc.Iy, E: sc.E, Fy: sc.Fy}
	return curve.Sweep(sc.Height/4, 2*sc.Height, sc.Height/20, sc.Tag, section)
}

func summaryLines(result *column.CheckResult, hasLoads bool) []string {
	lines := []string{
		fmt.Sprintf("Pr = %s N", calcsheet.FormatNumber(result.Resistance.Pr)),
		fmt.Sprintf("Governing axis: %s", result.Resistance.GoverningAxis()),
	}
	if hasLoads {
		lines = append(lines,
			fmt.Sprintf("Cf = %s N (%s)", calcsheet.FormatNumber(result.Cf), result.Governing.Description),
			fmt.Sprintf("DCR = %.3f", result.DCR),
			result.Message,
		)
	}
	return lines
}
