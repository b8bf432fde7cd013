package sliceio

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

// WriteProfile persists vals, a flat profile or layer-sequence array, to
// path as a raw little-endian IEEE-754 double sequence: no header, no
// magic number, no version. The profile format has no need for a tile
// table or a magic/version pair because it is an in-memory interchange
// format between pipeline stages, never read back by a different build
// of this program.
func WriteProfile(path string, vals []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	_, err = f.Write(buf)
	return err
}

// ReadProfile reads back a flat double sequence written by WriteProfile.
func ReadProfile(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("sliceio: profile file %q has length %d, not a multiple of 8", path, len(data))
	}
	vals := make([]float64, len(data)/8)
	for i := range vals {
		vals[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	return vals, nil
}
