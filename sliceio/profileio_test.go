package sliceio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteReadProfileRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.bin")
	want := []float64{0, 0.2, 10, 0.2}

	if err := WriteProfile(path, want); err != nil {
		t.Fatalf("WriteProfile: %v", err)
	}
	got, err := ReadProfile(path)
	if err != nil {
		t.Fatalf("ReadProfile: %v", err)
	}
	assert.Equal(t, want, got, "round-tripped profile values")
}

func TestReadProfileRejectsMisalignedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bin")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := ReadProfile(path); err == nil {
		t.Fatalf("expected an error reading a non-multiple-of-8 file")
	}
}
