// Package params builds SlicingParameters from a Config View and an
// object's Z height: nominal/bounded layer heights, first-layer heights,
// and raft geometry. It is the second stage in the slicing pipeline,
// following the familiar Settings -> Config -> Build() shape.
package params

import (
	"fmt"

	"github.com/hiddenvs/slicecore/sliceconfig"
	"github.com/hiddenvs/slicecore/sliceconst"
)

// SlicingParameters is the immutable result of Build: every global
// quantity the rest of the pipeline needs to turn an object height into
// a layer-height profile.
type SlicingParameters struct {
	LayerHeight    float64
	MinLayerHeight float64
	MaxLayerHeight float64

	FirstPrintLayerHeight    float64
	FirstObjectLayerHeight   float64
	FirstObjectLayerBridging bool

	BaseRaftLayers      int
	InterfaceRaftLayers int

	BaseRaftLayerHeight            float64
	InterfaceRaftLayerHeight       float64
	ContactRaftLayerHeight         float64
	ContactRaftLayerHeightBridging bool

	RaftBaseTopZ      float64
	RaftInterfaceTopZ float64
	RaftContactTopZ   float64

	GapRaftObject    float64
	GapObjectSupport float64
	GapSupportObject float64

	SolubleInterface bool

	ObjectPrintZMin float64
	ObjectPrintZMax float64
}

// ObjectPrintZHeight returns the Z span of the object portion of the print.
func (p SlicingParameters) ObjectPrintZHeight() float64 {
	return p.ObjectPrintZMax - p.ObjectPrintZMin
}

// HasRaft reports whether any raft layer is configured.
func (p SlicingParameters) HasRaft() bool {
	return p.BaseRaftLayers+p.InterfaceRaftLayers > 0
}

// RaftLayers returns the total raft layer count.
func (p SlicingParameters) RaftLayers() int {
	return p.BaseRaftLayers + p.InterfaceRaftLayers
}

// FirstObjectLayerHeightFixed reports whether the first object layer must
// keep a height distinct from the nominal layer height: either because
// there's a raft underneath it, or because the user configured a
// different first-layer height.
func (p SlicingParameters) FirstObjectLayerHeightFixed() bool {
	return p.HasRaft() || p.FirstPrintLayerHeight != p.LayerHeight
}

// extruderBounds is the per-extruder [min, max] layer-height window
// computed in Build step 5.
type extruderBounds struct {
	min, max float64
}

func boundsFor(cfg sliceconfig.Config, extruder int) extruderBounds {
	mn := cfg.MinLayerHeightAt(extruder)
	if mn <= 0 {
		mn = sliceconst.DefaultMinLayerHeight
	}
	if mn < sliceconst.GlobalMinLayerHeight {
		mn = sliceconst.GlobalMinLayerHeight
	}

	mx := cfg.MaxLayerHeightAt(extruder)
	if mx <= 0 {
		mx = sliceconst.DefaultMaxLayerHeightRatio * cfg.NozzleDiameterAt(extruder)
	}
	if mx < mn {
		mx = mn
	}
	return extruderBounds{min: mn, max: mx}
}

// Build computes SlicingParameters for an object of the given Z height,
// printed with the given 1-based extruder indices, from cfg. It returns
// an error only on a precondition violation: a non-positive object
// height or an empty nozzle-diameter table.
func Build(cfg sliceconfig.Config, objectHeight float64, extrudersUsed []int) (SlicingParameters, error) {
	if objectHeight <= 0 {
		return SlicingParameters{}, fmt.Errorf("params: object height must be positive, got %v", objectHeight)
	}
	if len(cfg.NozzleDiameter) == 0 {
		return SlicingParameters{}, fmt.Errorf("params: nozzle diameter table is empty")
	}

	var p SlicingParameters

	// Step 1: first-layer height.
	firstLayerHeight := cfg.FirstLayer.Resolve(cfg.LayerHeight)

	// Step 3: soluble interface.
	p.SolubleInterface = cfg.SolubleInterface()

	// Step 4: seed.
	p.LayerHeight = cfg.LayerHeight
	p.FirstPrintLayerHeight = firstLayerHeight
	p.FirstObjectLayerHeight = firstLayerHeight
	p.ObjectPrintZMin = 0
	p.ObjectPrintZMax = objectHeight
	p.BaseRaftLayers = cfg.RaftLayers

	// Step 5: min/max layer height, intersected over every extruder the
	// object (and, if support or raft is enabled, support) uses.
	extruders := extrudersUsed
	if cfg.SupportMaterial || cfg.RaftLayers > 0 {
		extruders = append(append([]int{}, extruders...), cfg.SupportMaterialExtruder)
	}
	if len(extruders) == 0 {
		extruders = []int{0}
	}

	mn, mx := 0.0, 0.0
	for i, e := range extruders {
		b := boundsFor(cfg, e)
		if i == 0 {
			mn, mx = b.min, b.max
			continue
		}
		if b.min > mn {
			mn = b.min
		}
		if b.max < mx {
			mx = b.max
		}
	}
	if mx < mn {
		mx = mn
	}
	// Clamp so min <= nominal <= max, widening if necessary.
	if mn > p.LayerHeight {
		mn = p.LayerHeight
	}
	if mx < p.LayerHeight {
		mx = p.LayerHeight
	}
	p.MinLayerHeight, p.MaxLayerHeight = mn, mx

	// Step 6: gaps.
	if !p.SolubleInterface {
		p.GapRaftObject = cfg.SupportContactDistance
		p.GapObjectSupport = cfg.SupportContactDistance
		p.GapSupportObject = cfg.SupportContactDistance
	}

	// Step 7: raft assembly.
	if p.BaseRaftLayers > 0 {
		total := p.BaseRaftLayers
		p.InterfaceRaftLayers = (total + 1) / 2
		p.BaseRaftLayers = total - p.InterfaceRaftLayers

		supportDmr := cfg.NozzleDiameterAt(cfg.SupportMaterialExtruder)
		interfaceDmr := cfg.NozzleDiameterAt(cfg.SupportMaterialInterfaceExtruder)

		p.BaseRaftLayerHeight = max(p.LayerHeight, sliceconst.DefaultMaxLayerHeightRatio*supportDmr)
		p.InterfaceRaftLayerHeight = max(p.LayerHeight, sliceconst.DefaultMaxLayerHeightRatio*interfaceDmr)
		p.ContactRaftLayerHeight = max(p.LayerHeight, sliceconst.DefaultMaxLayerHeightRatio*interfaceDmr)

		if !p.SolubleInterface {
			mean := meanNozzleDiameter(cfg, extrudersUsed)
			p.FirstObjectLayerHeight = mean
			p.FirstObjectLayerBridging = true
		}
	}

	// Step 8: raft Z boundaries.
	if p.HasRaft() {
		if p.RaftLayers() == 1 {
			p.ContactRaftLayerHeight = firstLayerHeight
			p.RaftContactTopZ = firstLayerHeight
			p.RaftBaseTopZ = firstLayerHeight
			p.RaftInterfaceTopZ = firstLayerHeight
		} else {
			p.RaftBaseTopZ = firstLayerHeight + float64(p.BaseRaftLayers-1)*p.BaseRaftLayerHeight
			p.RaftInterfaceTopZ = p.RaftBaseTopZ + float64(p.InterfaceRaftLayers-1)*p.InterfaceRaftLayerHeight
			p.RaftContactTopZ = p.RaftInterfaceTopZ + p.ContactRaftLayerHeight
		}
		p.ObjectPrintZMin = p.RaftContactTopZ + p.GapRaftObject
		p.ObjectPrintZMax += p.ObjectPrintZMin
	}

	return p, nil
}

func meanNozzleDiameter(cfg sliceconfig.Config, extruders []int) float64 {
	if len(extruders) == 0 {
		return cfg.NozzleDiameterAt(0)
	}
	sum := 0.0
	for _, e := range extruders {
		sum += cfg.NozzleDiameterAt(e)
	}
	return sum / float64(len(extruders))
}
