package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hiddenvs/slicecore/meshheight"
	"github.com/hiddenvs/slicecore/params"
	"github.com/hiddenvs/slicecore/profile"
	"github.com/hiddenvs/slicecore/sliceconfig"
	"github.com/hiddenvs/slicecore/sliceio"
)

var (
	profileCfgFile      string
	profileObjectHeight float64
	profileExtruders    []int
	profileRanges       []string
	profileMeshFile     string
	profileCuspTol      float64
	profileOut          string
)

// profileCmd builds an initial layer-height profile from either a set of
// user ranges or mesh curvature, and writes it out as a flat double
// sequence.
var profileCmd = &cobra.Command{
	Use:   "profile OUTFILE",
	Short: "build a layer-height profile from ranges or a mesh",
	Long: `Build a layer-height profile.

Without --mesh, the profile is built from the settings file's nominal
height plus any --range lo:hi:height entries. With --mesh, the profile
is built adaptively from the OBJ mesh's curvature instead.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := sliceconfig.Load(profileCfgFile)
		check(err)

		p, err := params.Build(cfg, profileObjectHeight, profileExtruders)
		check(err)

		ctx := newContext()
		ctx.StartTimer(sliceio.TimerProfileBuild)

		var prof profile.Profile
		if profileMeshFile != "" {
			oracle := meshheight.NewTriMeshOracle(p.MaxLayerHeight)
			check(oracle.AddOBJ(profileMeshFile))
			oracle.Prepare()
			ctx.Progressf("adaptive build from %s, cusp tolerance %v", profileMeshFile, profileCuspTol)
			prof = profile.Adaptive(p, oracle, profileCuspTol)
		} else {
			ranges, err := parseRanges(profileRanges)
			check(err)
			ctx.Progressf("range build with %d range(s)", len(ranges))
			prof = profile.FromRanges(p, ranges)
		}
		ctx.StopTimer(sliceio.TimerProfileBuild)

		check(prof.Validate(p.ObjectPrintZHeight(), p.MinLayerHeight, p.MaxLayerHeight))
		check(sliceio.WriteProfile(args[0], []float64(prof)))

		fmt.Printf("%d key-points written to '%s'\n", prof.NumPoints(), args[0])
		dumpIfVerbose(ctx, "profile")
	},
}

func init() {
	RootCmd.AddCommand(profileCmd)

	profileCmd.Flags().StringVar(&profileCfgFile, "config", "slicecore.yml", "settings file")
	profileCmd.Flags().Float64Var(&profileObjectHeight, "object-height", 0, "object Z height (required)")
	profileCmd.Flags().IntSliceVar(&profileExtruders, "extruders", []int{1}, "1-based extruder indices used by the object")
	profileCmd.Flags().StringArrayVar(&profileRanges, "range", nil, "a fixed-height band, lo:hi:height (repeatable)")
	profileCmd.Flags().StringVar(&profileMeshFile, "mesh", "", "OBJ mesh file; build adaptively from its curvature")
	profileCmd.Flags().Float64Var(&profileCuspTol, "cusp-tolerance", meshheight.DefaultCuspTolerance, "adaptive build cusp tolerance")
	profileCmd.MarkFlagRequired("object-height")
}
