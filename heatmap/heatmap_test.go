package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hiddenvs/slicecore/params"
)

func flatParams() params.SlicingParameters {
	return params.SlicingParameters{
		LayerHeight:     0.2,
		MinLayerHeight:  0.1,
		MaxLayerHeight:  0.3,
		ObjectPrintZMin: 0,
		ObjectPrintZMax: 10,
	}
}

func TestEncodeFillsEveryCellWithinBuffer(t *testing.T) {
	p := flatParams()
	layers := []float64{0, 0.2, 0.2, 0.4, 0.4, 10}
	buf := make([]byte, 4*4*4)

	n := Encode(p, layers, buf, 4, 4, false)
	assert.Equal(t, 16, n, "cells filled")
	for i, b := range buf {
		if i%4 == 3 && b != 255 {
			t.Fatalf("alpha channel at byte %d = %d, want 255", i, b)
		}
	}
}

func TestEncodeNeverExceedsBufferCapacity(t *testing.T) {
	p := flatParams()
	layers := []float64{0, 0.2, 0.2, 10}
	buf := make([]byte, 2*4) // room for 2 cells only

	n := Encode(p, layers, buf, 4, 4, false)
	if n != 2 {
		t.Fatalf("Encode filled %d cells, want 2 (buffer-limited)", n)
	}
}

func TestEncodeLOD2HalvesResolution(t *testing.T) {
	p := flatParams()
	layers := []float64{0, 0.2, 0.2, 10}
	buf := make([]byte, 8*8*4)

	n := Encode(p, layers, buf, 8, 8, true)
	if n != 16 {
		t.Fatalf("Encode with lod2 filled %d cells, want 16 (4x4)", n)
	}
}

func TestEncodeFirstColumnDuplicatesPreviousRowLastCell(t *testing.T) {
	p := flatParams()
	layers := []float64{0, 0.2, 0.2, 10}
	buf := make([]byte, 2*3*4)

	Encode(p, layers, buf, 2, 3, false)
	row0Last := buf[2*4 : 2*4+4]
	row1First := buf[3*4 : 3*4+4]
	for i := range row0Last {
		if row0Last[i] != row1First[i] {
			t.Fatalf("row 1's first cell %v should duplicate row 0's last cell %v", row1First, row0Last)
		}
	}
}

func TestEncodeEmptyOnDegenerateInput(t *testing.T) {
	p := flatParams()
	buf := make([]byte, 16)
	if n := Encode(p, nil, buf, 2, 2, false); n != 0 {
		t.Fatalf("Encode with no layers filled %d cells, want 0", n)
	}
	if n := Encode(p, []float64{0, 0.2, 0.2, 10}, buf, 0, 0, false); n != 0 {
		t.Fatalf("Encode with zero rows/cols filled %d cells, want 0", n)
	}
}

func TestNormalizedDeviationSignsMatchSide(t *testing.T) {
	if d := normalizedDeviation(0.3, 0.2, 0.1, 0.3); d <= 0 {
		t.Fatalf("deviation above nominal should be positive, got %v", d)
	}
	if d := normalizedDeviation(0.1, 0.2, 0.1, 0.3); d >= 0 {
		t.Fatalf("deviation below nominal should be negative, got %v", d)
	}
	if d := normalizedDeviation(0.2, 0.2, 0.1, 0.3); d != 0 {
		t.Fatalf("deviation at nominal should be 0, got %v", d)
	}
}
