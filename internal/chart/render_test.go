package chart

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cygni-arcana/internal/catalog"
)

func TestRenderAndSave(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	for _, theme := range []Theme{Dark, Light} {
		t.Run(theme.Name, func(t *testing.T) {
			img, err := Render(cat.Stars, theme)
			require.NoError(t, err)
			assert.Equal(t, canvasWidth, img.Bounds().Dx())
			assert.Equal(t, canvasHeight, img.Bounds().Dy())

			path := filepath.Join(t.TempDir(), "chart.png")
			require.NoError(t, Save(img, path))

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			decoded, err := png.Decode(f)
			require.NoError(t, err)
			assert.Equal(t, img.Bounds(), decoded.Bounds())
		})
	}
}

func TestDownscale(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	img, err := Render(cat.Stars, Dark)
	require.NoError(t, err)

	small := Downscale(img, 300)
	assert.Equal(t, 300, small.Bounds().Dy())
	assert.Equal(t, 400, small.Bounds().Dx()) // 4:3 aspect preserved
}

func TestSaveToMissingDirectory(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	img, err := Render(cat.Stars, Dark)
	require.NoError(t, err)

	err = Save(img, filepath.Join(t.TempDir(), "missing", "chart.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error saving chart")
}
