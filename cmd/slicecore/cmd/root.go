package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "slicecore",
	Short: "variable layer-height slicing core",
	Long: `slicecore drives the variable-layer-height slicing pipeline:
	- build slicing parameters from a printer/object configuration,
	- build a layer-height profile from ranges or from mesh curvature,
	- interactively adjust a profile,
	- generate the final layer sequence,
	- render a layer-height heatmap for display.`,
}

var verbose bool

// Execute adds all child commands to the root command and runs it. This
// is called by main.main(). It only needs to happen once to RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "dump the build context's progress log")
}
