package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/gocurve/internal/curved"
	"github.com/spf13/cobra"
)

var (
	curvedFilePath string
	curvedFileOut  curvedOutput
)

var curvedFileCmd = &cobra.Command{
	Use:   "file",
	Short: "Analyze a curved-beam section defined in a JSON file",
	Long: `Run a curved-beam analysis with the full input read from a JSON
file. The file carries the shape, its parameters, the inner radius
(where applicable), and the load:

  {
    "shape": "rectangular",
    "ri": 0.05,
    "m": 1000,
    "params": {"b": 0.02, "t": 0.02}
  }

Examples:
  gocurve curved file --file crane-hook.json
  gocurve curved file -f section.json --diagram -o stress.png`,
	Run: runCurvedFile,
}

func init() {
	curvedCmd.AddCommand(curvedFileCmd)

	curvedFileCmd.Flags().StringVarP(&curvedFilePath, "file", "f", "", "Path to analysis JSON file [required]")
	curvedFileCmd.MarkFlagRequired("file")
	curvedFileOut.addOutputFlags(curvedFileCmd)
}

func runCurvedFile(cmd *cobra.Command, args []string) {
	in, err := loadCurvedInput(curvedFilePath)
	if err != nil {
		fmt.Printf("Error loading input: %v\n", err)
		return
	}
	runCurved(in, curvedFileOut)
}

func loadCurvedInput(path string) (curved.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return curved.Input{}, err
	}
	var in curved.Input
	if err := json.Unmarshal(data, &in); err != nil {
		return curved.Input{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return in, nil
}
