package isoterra

import (
	"bytes"
	"io"
	"os"

	"github.com/voidshard/isoterra/internal/encoding"
)

// Encode writes the grid to w as a snapshot (see internal/encoding).
// Snapshots are compressed & checksummed.
func (g *Grid) Encode(w io.Writer) error {
	ids := make([]byte, len(g.voxels))
	for i, b := range g.voxels {
		ids[i] = byte(b.ID())
	}
	return encoding.Encode(w, g.length, ids)
}

// SaveFile writes the grid snapshot to the given path.
func (g *Grid) SaveFile(fpath string) error {
	buff := new(bytes.Buffer)
	err := g.Encode(buff)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}

// DecodeGrid reads a grid snapshot from r.
func DecodeGrid(r io.Reader) (*Grid, error) {
	length, ids, err := encoding.Decode(r)
	if err != nil {
		return nil, err
	}

	grid := NewGrid(length)
	for i, id := range ids {
		b := blockForID(int(id))
		grid.voxels[i] = b
		if b != Empty {
			grid.seen.Set(b.ID(), true)
		}
	}
	return grid, nil
}

// LoadGridFile reads a grid snapshot from disk.
func LoadGridFile(fpath string) (*Grid, error) {
	fd, err := os.Open(fpath)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return DecodeGrid(fd)
}
