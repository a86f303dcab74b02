// Package worldfile persists generated worlds as zstd-compressed JSON
// behind a fixed magic header.
package worldfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"badlands/internal/elevation"
	"badlands/internal/generate"
	"badlands/internal/world"
)

// Version is the current file format version.
const Version = 1

var magic = [4]byte{'B', 'D', 'L', 'W'}

// ErrFormat reports a file that is not a world file.
var ErrFormat = errors.New("worldfile: not a world file")

// document is the JSON payload behind the header. Tiles and elevation are
// stored row-major; elevation may be absent.
type document struct {
	Size      int               `json:"size"`
	Seed      int64             `json:"seed"`
	Spawn     world.Coordinate  `json:"spawn"`
	Env       world.Environment `json:"env"`
	Tiles     []world.Tile      `json:"tiles"`
	Elevation []float64         `json:"elevation,omitempty"`
}

// Save writes a generated world to path. Phase timings are a run artifact
// and are not persisted.
func Save(path string, res *generate.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("worldfile: create %s: %w", path, err)
	}
	defer f.Close()

	header := append(magic[:], Version)
	if _, err := f.Write(header); err != nil {
		return fmt.Errorf("worldfile: write %s: %w", path, err)
	}

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("worldfile: compressor: %w", err)
	}
	if err := json.NewEncoder(zw).Encode(toDocument(res)); err != nil {
		zw.Close()
		return fmt.Errorf("worldfile: encode %s: %w", path, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("worldfile: flush %s: %w", path, err)
	}
	return f.Close()
}

// Load reads a world file written by Save.
func Load(path string) (*generate.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("worldfile: open %s: %w", path, err)
	}
	defer f.Close()

	header := make([]byte, len(magic)+1)
	if _, err := io.ReadFull(f, header); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormat, path)
	}
	if [4]byte(header[:4]) != magic {
		return nil, fmt.Errorf("%w: %s", ErrFormat, path)
	}
	if v := header[4]; v != Version {
		return nil, fmt.Errorf("worldfile: %s has version %d, expected %d", path, v, Version)
	}

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("worldfile: decompressor: %w", err)
	}
	defer zr.Close()

	var doc document
	if err := json.NewDecoder(zr).Decode(&doc); err != nil {
		return nil, fmt.Errorf("worldfile: decode %s: %w", path, err)
	}
	return fromDocument(&doc, path)
}

func toDocument(res *generate.Result) *document {
	size := res.World.Size()
	doc := &document{
		Size:  size,
		Seed:  res.Seed,
		Spawn: res.Spawn,
		Env:   res.Env,
		Tiles: make([]world.Tile, 0, size*size),
	}
	for _, row := range res.World {
		doc.Tiles = append(doc.Tiles, row...)
	}
	if res.Elevation != nil {
		doc.Elevation = res.Elevation.Values()
	}
	return doc
}

func fromDocument(doc *document, path string) (*generate.Result, error) {
	if len(doc.Tiles) != doc.Size*doc.Size {
		return nil, fmt.Errorf("worldfile: %s holds %d tiles for size %d", path, len(doc.Tiles), doc.Size)
	}
	m := world.NewTileMatrix(doc.Size)
	for row := range m {
		copy(m[row], doc.Tiles[row*doc.Size:(row+1)*doc.Size])
	}

	res := &generate.Result{
		World: m,
		Spawn: doc.Spawn,
		Env:   doc.Env,
		Seed:  doc.Seed,
	}
	if len(doc.Elevation) > 0 {
		if len(doc.Elevation) != doc.Size*doc.Size {
			return nil, fmt.Errorf("worldfile: %s holds %d elevation values for size %d", path, len(doc.Elevation), doc.Size)
		}
		res.Elevation = elevation.FromValues(doc.Size, doc.Elevation)
	}
	return res, nil
}
