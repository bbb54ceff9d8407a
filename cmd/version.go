package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goscol/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goscol",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goscol v%s\n", version.Version)
		fmt.Println("Steel Column Compression Check Tool")
		fmt.Println("Based on CSA S16:19 and the NBCC gravity load combinations")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
