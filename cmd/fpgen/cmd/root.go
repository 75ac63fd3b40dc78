package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fpgen",
	Short: "Footprint generator for the gEDA pcb layout editor",
	Long: `fpgen generates footprint definitions (.fp files) for the pcb printed
circuit board editor from declarative footprint scripts.

Pads and pins can be placed by centers, edges or corners, inherit values
from previously declared shapes, and be laid out in staggered arrays.
Lengths are mils (1/1000 inch) unless suffixed with mm.

Examples:
  fpgen gen connectors.fps                # Write every footprint as <name>.fp
  fpgen gen --out lib/ *.fps              # Write into a library directory
  fpgen show connectors.fps               # Print the pcb output without writing`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
