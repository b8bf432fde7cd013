// Package profile implements the Layer-Height Profile, its two builders
// (from ranges and adaptive), the interactive Profile Editor, and the
// Layer Generator.
//
// A Profile is stored as a flat, doubled-keypoint array rather than a
// nested structure: cheap to walk linearly, cheap to splice a sub-range
// out of and back into, at the cost of a little redundancy at segment
// boundaries.
package profile

import (
	"fmt"

	assert "github.com/arl/assertgo"
	"github.com/hiddenvs/slicecore/sliceconst"
)

// Profile is a flat sequence [z0, h0, z1, h1, ...] of key-points. Within
// a segment [zi, zi+1], height is linearly interpolated between hi and
// hi+1.
type Profile []float64

// NumPoints returns the number of (z, h) key-points in p.
func (p Profile) NumPoints() int { return len(p) / 2 }

// Z returns the Z coordinate of the i-th key-point.
func (p Profile) Z(i int) float64 { return p[2*i] }

// H returns the height of the i-th key-point.
func (p Profile) H(i int) float64 { return p[2*i+1] }

// LastZ returns the Z coordinate of the final key-point.
func (p Profile) LastZ() float64 { return p[len(p)-2] }

// New builds a Profile from the given z/h pairs, in order.
func New(zh ...float64) Profile {
	out := make(Profile, len(zh))
	copy(out, zh)
	return out
}

// HeightAt linearly interpolates the profile's height at z. z is assumed
// to lie within [Z(0), LastZ()]; values outside are clamped to the
// nearest endpoint's height.
func (p Profile) HeightAt(z float64) float64 {
	n := p.NumPoints()
	if n == 0 {
		return 0
	}
	if z <= p.Z(0) {
		return p.H(0)
	}
	if z >= p.LastZ() {
		return p.H(n - 1)
	}
	i := p.segmentContaining(z)
	z0, h0 := p.Z(i), p.H(i)
	z1, h1 := p.Z(i+1), p.H(i+1)
	if z1-z0 < sliceconst.Epsilon {
		return h1
	}
	t := (z - z0) / (z1 - z0)
	return h0 + t*(h1-h0)
}

// segmentContaining returns the index i such that z falls within
// [Z(i), Z(i+1)]. z must lie within the profile's Z span.
func (p Profile) segmentContaining(z float64) int {
	n := p.NumPoints()
	for i := 0; i < n-1; i++ {
		if z <= p.Z(i+1) {
			return i
		}
	}
	return n - 2
}

// Validate checks every structural invariant for a profile spanning [0,
// objectHeight] with heights bounded by [minH, maxH].
func (p Profile) Validate(objectHeight, minH, maxH float64) error {
	if len(p)%2 != 0 {
		return fmt.Errorf("profile: odd length %d", len(p))
	}
	if len(p) < 4 {
		return fmt.Errorf("profile: fewer than one segment (%d entries)", len(p))
	}
	if p.Z(0) > sliceconst.Epsilon || p.Z(0) < -sliceconst.Epsilon {
		return fmt.Errorf("profile: z0 = %v, want 0", p.Z(0))
	}
	if d := p.LastZ() - objectHeight; d > sliceconst.Epsilon || d < -sliceconst.Epsilon {
		return fmt.Errorf("profile: last z = %v, want %v", p.LastZ(), objectHeight)
	}
	n := p.NumPoints()
	for i := 0; i < n; i++ {
		if i > 0 && p.Z(i) < p.Z(i-1)-sliceconst.Epsilon {
			return fmt.Errorf("profile: z not monotone at index %d (%v < %v)", i, p.Z(i), p.Z(i-1))
		}
		h := p.H(i)
		if h < minH-sliceconst.Epsilon || h > maxH+sliceconst.Epsilon {
			return fmt.Errorf("profile: height %v at index %d out of bounds [%v, %v]", h, i, minH, maxH)
		}
	}
	return nil
}

// assertValid runs Validate as a debug-only post-condition check: a
// no-op unless built with -tags debug.
func assertValid(p Profile, objectHeight, minH, maxH float64) {
	err := p.Validate(objectHeight, minH, maxH)
	assert.True(err == nil, "invalid profile: %v", err)
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
