package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/fpgen/pkg/geda/footprint"
	"github.com/OpenTraceLab/fpgen/pkg/geda/script"
)

var genOutDir string

var genCmd = &cobra.Command{
	Use:   "gen <script-file>...",
	Short: "Generate .fp files from footprint scripts",
	Long: `Parse one or more footprint scripts and write every footprint they
define to disk, one <name>.fp file per footprint.

Examples:
  fpgen gen connectors.fps
  fpgen gen --out lib/ switches.fps connectors.fps`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGen,
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().StringVarP(&genOutDir, "out", "o", ".",
		"output directory for generated .fp files")
}

func runGen(cmd *cobra.Command, args []string) error {
	fs := afero.NewOsFs()
	writer := footprint.NewWriter(fs, genOutDir)

	parser, err := script.NewParser()
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	total := 0
	for _, filename := range args {
		if verbose {
			fmt.Printf("Parsing script: %s\n", filename)
		}
		file, err := parser.ParseFile(fs, filename)
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}

		footprints, err := script.Compile(file)
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}

		for _, f := range footprints {
			if err := writer.Write(f); err != nil {
				return fmt.Errorf("%s: %w", filename, err)
			}
			fmt.Printf("  wrote %s%s (%d shapes)\n", f.Name, footprint.Extension, len(f.Shapes()))
			total++
		}
	}

	fmt.Printf("Generated %d footprint(s)\n", total)
	return nil
}
