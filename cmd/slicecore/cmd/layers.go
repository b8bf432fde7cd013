package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hiddenvs/slicecore/params"
	"github.com/hiddenvs/slicecore/profile"
	"github.com/hiddenvs/slicecore/sliceconfig"
	"github.com/hiddenvs/slicecore/sliceio"
)

var (
	layersCfgFile      string
	layersObjectHeight float64
	layersExtruders    []int
)

// layersCmd reads a profile file, generates the layer sequence from it and
// writes that sequence to OUTFILE.
var layersCmd = &cobra.Command{
	Use:   "layers PROFILE OUTFILE",
	Short: "generate the final layer sequence from a profile",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := sliceconfig.Load(layersCfgFile)
		check(err)

		p, err := params.Build(cfg, layersObjectHeight, layersExtruders)
		check(err)

		vals, err := sliceio.ReadProfile(args[0])
		check(err)
		prof := profile.Profile(vals)
		check(prof.Validate(p.ObjectPrintZHeight(), p.MinLayerHeight, p.MaxLayerHeight))

		ctx := newContext()
		ctx.StartTimer(sliceio.TimerLayers)
		layers := profile.Generate(p, prof)
		ctx.StopTimer(sliceio.TimerLayers)

		check(sliceio.WriteProfile(args[1], layers))
		fmt.Printf("%d layers written to '%s'\n", len(layers)/2, args[1])
		dumpIfVerbose(ctx, "layers")
	},
}

func init() {
	RootCmd.AddCommand(layersCmd)

	layersCmd.Flags().StringVar(&layersCfgFile, "config", "slicecore.yml", "settings file")
	layersCmd.Flags().Float64Var(&layersObjectHeight, "object-height", 0, "object Z height (required)")
	layersCmd.Flags().IntSliceVar(&layersExtruders, "extruders", []int{1}, "1-based extruder indices used by the object")
	layersCmd.MarkFlagRequired("object-height")
}
