package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hiddenvs/slicecore/params"
	"github.com/hiddenvs/slicecore/sliceconfig"
	"github.com/hiddenvs/slicecore/sliceio"
)

var (
	paramsCfgFile       string
	paramsObjectHeight  float64
	paramsExtrudersUsed []int
)

// paramsCmd represents the params command.
var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "build and print slicing parameters",
	Long: `Build SlicingParameters from a settings file and an object height,
then print every resolved field to standard output.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := sliceconfig.Load(paramsCfgFile)
		check(err)

		ctx := newContext()
		ctx.StartTimer(sliceio.TimerParams)
		p, err := params.Build(cfg, paramsObjectHeight, paramsExtrudersUsed)
		ctx.StopTimer(sliceio.TimerParams)
		check(err)

		printParams(p)
		dumpIfVerbose(ctx, "params")
	},
}

func printParams(p params.SlicingParameters) {
	fmt.Printf("layer_height:                   %v\n", p.LayerHeight)
	fmt.Printf("min_layer_height:               %v\n", p.MinLayerHeight)
	fmt.Printf("max_layer_height:               %v\n", p.MaxLayerHeight)
	fmt.Printf("first_print_layer_height:       %v\n", p.FirstPrintLayerHeight)
	fmt.Printf("first_object_layer_height:      %v\n", p.FirstObjectLayerHeight)
	fmt.Printf("first_object_layer_bridging:    %v\n", p.FirstObjectLayerBridging)
	fmt.Printf("base_raft_layers:               %v\n", p.BaseRaftLayers)
	fmt.Printf("interface_raft_layers:          %v\n", p.InterfaceRaftLayers)
	fmt.Printf("base_raft_layer_height:         %v\n", p.BaseRaftLayerHeight)
	fmt.Printf("interface_raft_layer_height:    %v\n", p.InterfaceRaftLayerHeight)
	fmt.Printf("contact_raft_layer_height:      %v\n", p.ContactRaftLayerHeight)
	fmt.Printf("contact_raft_layer_height_bridging: %v\n", p.ContactRaftLayerHeightBridging)
	fmt.Printf("raft_base_top_z:                %v\n", p.RaftBaseTopZ)
	fmt.Printf("raft_interface_top_z:           %v\n", p.RaftInterfaceTopZ)
	fmt.Printf("raft_contact_top_z:             %v\n", p.RaftContactTopZ)
	fmt.Printf("gap_raft_object:                %v\n", p.GapRaftObject)
	fmt.Printf("gap_object_support:             %v\n", p.GapObjectSupport)
	fmt.Printf("gap_support_object:             %v\n", p.GapSupportObject)
	fmt.Printf("soluble_interface:              %v\n", p.SolubleInterface)
	fmt.Printf("object_print_z_min:             %v\n", p.ObjectPrintZMin)
	fmt.Printf("object_print_z_max:             %v\n", p.ObjectPrintZMax)
	fmt.Printf("object_print_z_height:          %v\n", p.ObjectPrintZHeight())
}

func init() {
	RootCmd.AddCommand(paramsCmd)

	paramsCmd.Flags().StringVar(&paramsCfgFile, "config", "slicecore.yml", "settings file")
	paramsCmd.Flags().Float64Var(&paramsObjectHeight, "object-height", 0, "object Z height (required)")
	paramsCmd.Flags().IntSliceVar(&paramsExtrudersUsed, "extruders", []int{1}, "1-based extruder indices used by the object")
	paramsCmd.MarkFlagRequired("object-height")
}
