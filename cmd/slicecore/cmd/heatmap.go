package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hiddenvs/slicecore/heatmap"
	"github.com/hiddenvs/slicecore/params"
	"github.com/hiddenvs/slicecore/sliceconfig"
	"github.com/hiddenvs/slicecore/sliceio"
)

var (
	heatmapCfgFile      string
	heatmapObjectHeight float64
	heatmapExtruders    []int
	heatmapRows         int
	heatmapCols         int
	heatmapLOD2         bool
)

// heatmapCmd renders a layer sequence into a raw RGBA byte grid.
var heatmapCmd = &cobra.Command{
	Use:   "heatmap LAYERS OUTFILE",
	Short: "render a layer sequence into an RGBA heatmap",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := sliceconfig.Load(heatmapCfgFile)
		check(err)

		p, err := params.Build(cfg, heatmapObjectHeight, heatmapExtruders)
		check(err)

		layers, err := sliceio.ReadProfile(args[0])
		check(err)

		ctx := newContext()
		ctx.StartTimer(sliceio.TimerHeatmap)
		buf := make([]byte, heatmapRows*heatmapCols*4)
		n := heatmap.Encode(p, layers, buf, heatmapRows, heatmapCols, heatmapLOD2)
		ctx.StopTimer(sliceio.TimerHeatmap)

		check(os.WriteFile(args[1], buf, 0644))
		fmt.Printf("%d cells written to '%s'\n", n, args[1])
		dumpIfVerbose(ctx, "heatmap")
	},
}

func init() {
	RootCmd.AddCommand(heatmapCmd)

	heatmapCmd.Flags().StringVar(&heatmapCfgFile, "config", "slicecore.yml", "settings file")
	heatmapCmd.Flags().Float64Var(&heatmapObjectHeight, "object-height", 0, "object Z height (required)")
	heatmapCmd.Flags().IntSliceVar(&heatmapExtruders, "extruders", []int{1}, "1-based extruder indices used by the object")
	heatmapCmd.Flags().IntVar(&heatmapRows, "rows", 64, "grid rows")
	heatmapCmd.Flags().IntVar(&heatmapCols, "cols", 64, "grid columns")
	heatmapCmd.Flags().BoolVar(&heatmapLOD2, "lod2", false, "render at half resolution")
	heatmapCmd.MarkFlagRequired("object-height")
}
