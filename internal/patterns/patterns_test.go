package patterns

import (
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiny-life/pkg/life"
)

func TestParse(t *testing.T) {
	cells, err := Parse("\n.o.\n..o\nooo\n")
	require.NoError(t, err)
	assert.Equal(t, []image.Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}, cells)

	_, err = Parse("o?o")
	assert.ErrorContains(t, err, "unexpected")
}

func TestParseRoundTripsPlaneString(t *testing.T) {
	p, err := life.New(9, 7, 256)
	require.NoError(t, err)
	p.Seed(2024)

	cells, err := Parse(p.String())
	require.NoError(t, err)

	q, err := life.New(9, 7, 256)
	require.NoError(t, err)
	Place(q, Pattern{Cells: cells}, 0, 0)
	assert.Equal(t, p.String(), q.String())
}

func TestDefaultLibrary(t *testing.T) {
	lib := Default()
	names := lib.Names()
	assert.Contains(t, names, "glider")
	assert.Contains(t, names, "blinker")
	assert.IsNonDecreasing(t, names)

	g, err := lib.Get("glider")
	require.NoError(t, err)
	assert.Len(t, g.Cells, 5)
	assert.Equal(t, image.Rect(0, 0, 3, 3), g.Bounds())

	_, err = lib.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownPattern)
}

func TestPlaceCentredBlinkerOscillates(t *testing.T) {
	p, err := life.New(7, 7, 256)
	require.NoError(t, err)

	blinker, err := Default().Get("blinker")
	require.NoError(t, err)
	ox, oy := Center(blinker, 7, 7)
	assert.Equal(t, 2, ox)
	assert.Equal(t, 3, oy)

	Place(p, blinker, ox, oy)
	before := p.String()
	p.Advance()
	assert.NotEqual(t, before, p.String())
	p.Advance()
	assert.Equal(t, before, p.String())
}

func TestPlaceClipsAtEdges(t *testing.T) {
	p, err := life.New(4, 4, 256)
	require.NoError(t, err)
	block, err := Default().Get("block")
	require.NoError(t, err)

	Place(p, block, 3, 3)
	assert.Equal(t, 1, p.Population())
	assert.True(t, p.Point(3, 3))
}

const patternYAML = `
patterns:
  - name: diehard
    description: vanishes after 130 generations
    rows: |
      ......o.
      oo......
      .o...ooo
  - name: pair
    cells:
      - [0, 0]
      - [5, 1]
`

func TestLoad(t *testing.T) {
	ps, err := Load(strings.NewReader(patternYAML))
	require.NoError(t, err)
	require.Len(t, ps, 2)

	assert.Equal(t, "diehard", ps[0].Name)
	assert.Len(t, ps[0].Cells, 7)
	assert.Equal(t, []image.Point{{0, 0}, {5, 1}}, ps[1].Cells)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(strings.NewReader("patterns:\n  - cells: [[1, 2]]\n"))
	assert.ErrorContains(t, err, "missing name")

	_, err = Load(strings.NewReader("patterns:\n  - name: bad\n    cells: [[1, 2, 3]]\n"))
	assert.ErrorContains(t, err, "want [x, y]")

	_, err = Load(strings.NewReader("patterns:\n  - name: bad\n    colour: red\n"))
	assert.ErrorContains(t, err, "decode patterns")

	ps, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestLibraryLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte(patternYAML), 0o644))

	lib := Default()
	require.NoError(t, lib.LoadFile(path))
	_, err := lib.Get("diehard")
	assert.NoError(t, err)
	_, err = lib.Get("glider")
	assert.NoError(t, err)

	assert.Error(t, lib.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
