package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/fpgen/pkg/geda/script"
)

var showCmd = &cobra.Command{
	Use:   "show <script-file>",
	Short: "Print footprints in pcb format without writing files",
	Long: `Parse a footprint script and print the serialized pcb output of every
footprint it defines to stdout. Nothing is written to disk.

Examples:
  fpgen show connectors.fps`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	filename := args[0]

	parser, err := script.NewParser()
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	file, err := parser.ParseFile(afero.NewOsFs(), filename)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	footprints, err := script.Compile(file)
	if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	for _, f := range footprints {
		if verbose {
			fmt.Printf("# %s: %d shapes\n", f.Name, len(f.Shapes()))
		}
		text, err := f.Format()
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		fmt.Print(text)
	}
	return nil
}
