package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocurve/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocurve",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gocurve v%s\n", version.Version)
		fmt.Println("Curved Beam Stress Analysis Tool")
		fmt.Println("Winkler-Bach curved-beam theory with straight-beam checks")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
