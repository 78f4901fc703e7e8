package pipeline

import (
	"image"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davesmith10/stereodepth/internal/imgio"
	"github.com/davesmith10/stereodepth/internal/stereo"
)

func writeNoisePNG(t *testing.T, dir, name string, w, h int, seed int64) string {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}
	path := filepath.Join(dir, name)
	require.NoError(t, imgio.SavePNG(path, img))
	return path
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("identical pair", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		left := writeNoisePNG(t, dir, "left.png", 64, 40, 1)
		right := writeNoisePNG(t, dir, "right.png", 64, 40, 1)

		p := stereo.Params{NumDisparities: 16, BlockSize: 9}
		result, err := Run(Options{LeftPath: left, RightPath: right, Params: p})
		require.NoError(t, err)
		assert.Equal(t, 64, result.Width)
		assert.Equal(t, 40, result.Height)
		require.NotNil(t, result.Map)

		// Self-match peaks at the far end of the strip.
		w := p.BlockSize / 2
		assert.Equal(t, uint8(p.NumDisparities), result.Map.GrayAt(32, 40/2).Y)
		assert.Zero(t, result.Map.GrayAt(0, w-1).Y, "border stays unwritten")
	})

	t.Run("geometry mismatch", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		left := writeNoisePNG(t, dir, "left.png", 64, 40, 1)
		right := writeNoisePNG(t, dir, "right.png", 60, 40, 2)

		_, err := Run(Options{LeftPath: left, RightPath: right, Params: stereo.DefaultParams()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "geometry mismatch")
	})

	t.Run("invalid parameters rejected before load", func(t *testing.T) {
		t.Parallel()
		_, err := Run(Options{
			LeftPath:  "does-not-exist.png",
			RightPath: "does-not-exist.png",
			Params:    stereo.Params{NumDisparities: 16, BlockSize: 8},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "search parameters")
	})

	t.Run("missing left image", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		right := writeNoisePNG(t, dir, "right.png", 64, 40, 1)

		_, err := Run(Options{
			LeftPath:  filepath.Join(dir, "absent.png"),
			RightPath: right,
			Params:    stereo.DefaultParams(),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "left image")
	})

	t.Run("undecodable right image", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		left := writeNoisePNG(t, dir, "left.png", 64, 40, 1)
		bad := filepath.Join(dir, "bad.png")
		require.NoError(t, os.WriteFile(bad, []byte("not a png"), 0644))

		_, err := Run(Options{LeftPath: left, RightPath: bad, Params: stereo.DefaultParams()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "right image")
	})
}
