package cmd

import (
	"github.com/spf13/cobra"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Steel column compression checks and resistance curves",
	Long: `Check doubly-symmetric steel columns in axial compression and
build resistance curves over a height range, based on CSA S16:19
Clause 13.3.1.

Subcommands:
  check    - Full compression check for one column at one height
  curve    - Resistance curve for one section over a height range
  compare  - Side-by-side resistance curves for two candidate sections
  batch    - Check a whole column schedule from an XLSX workbook

Columns can also be defined in JSON files for the check subcommand.

Example JSON file structure:
{
  "tag": "C-1",
  "height": 3250,
  "area": 16500,
  "ix": 308e6,
  "iy": 100e6,
  "kx": 1.0,
  "ky": 1.0,
  "e": 200e3,
  "fy": 345,
  "loads": {"d": 820000, "l": 1045100}
}`,
}

func init() {
	rootCmd.AddCommand(columnCmd)
}
