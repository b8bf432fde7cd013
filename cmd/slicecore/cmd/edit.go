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
	editCfgFile      string
	editObjectHeight float64
	editExtruders    []int
	editZ            float64
	editDelta        float64
	editBand         float64
	editAction       string
)

var editActions = map[string]profile.EditAction{
	"increase": profile.Increase,
	"decrease": profile.Decrease,
	"reduce":   profile.Reduce,
	"smooth":   profile.Smooth,
}

// editCmd applies one localized edit to a profile file in place.
var editCmd = &cobra.Command{
	Use:   "edit PROFILE",
	Short: "apply one localized edit to a profile",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		action, ok := editActions[editAction]
		if !ok {
			check(fmt.Errorf("unknown action %q, want one of increase, decrease, reduce, smooth", editAction))
		}

		cfg, err := sliceconfig.Load(editCfgFile)
		check(err)

		p, err := params.Build(cfg, editObjectHeight, editExtruders)
		check(err)

		vals, err := sliceio.ReadProfile(args[0])
		check(err)
		prof := profile.Profile(vals)

		ctx := newContext()
		ctx.StartTimer(sliceio.TimerProfileEdit)
		edited := profile.Adjust(p, prof, editZ, editDelta, editBand, action)
		ctx.StopTimer(sliceio.TimerProfileEdit)

		check(edited.Validate(p.ObjectPrintZHeight(), p.MinLayerHeight, p.MaxLayerHeight))
		check(sliceio.WriteProfile(args[0], []float64(edited)))

		fmt.Printf("%d key-points written to '%s'\n", edited.NumPoints(), args[0])
		dumpIfVerbose(ctx, "edit")
	},
}

func init() {
	RootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editCfgFile, "config", "slicecore.yml", "settings file")
	editCmd.Flags().Float64Var(&editObjectHeight, "object-height", 0, "object Z height (required)")
	editCmd.Flags().IntSliceVar(&editExtruders, "extruders", []int{1}, "1-based extruder indices used by the object")
	editCmd.Flags().Float64Var(&editZ, "z", 0, "Z coordinate at the center of the edit (required)")
	editCmd.Flags().Float64Var(&editDelta, "delta", 0.05, "edit magnitude")
	editCmd.Flags().Float64Var(&editBand, "band", 2, "Z-band width the edit affects")
	editCmd.Flags().StringVar(&editAction, "action", "increase", "increase, decrease, reduce, or smooth")
	editCmd.MarkFlagRequired("object-height")
	editCmd.MarkFlagRequired("z")
}
