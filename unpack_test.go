package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagcloud2d/cloud"
)

func TestTileName(t *testing.T) {
	assert.Equal(t, "0003_go.png", tileName(3, "go"))
	assert.Equal(t, "0012_a_b.png", tileName(12, "a/b"))
	assert.Equal(t, "0007.png", tileName(7, ""))
}

func TestUnpack(t *testing.T) {
	opts := DefaultOptions()
	opts.OutputDir = t.TempDir()
	data := newCloudData(sampleLayouter(t, cloud.SectorRings), sampleTags)

	_, err := writeOutputs(data, &opts, log.New(io.Discard))
	require.NoError(t, err)

	tilesDir := filepath.Join(t.TempDir(), "tiles")
	n, err := unpack(filepath.Join(opts.OutputDir, cloudJSONName), tilesDir)
	require.NoError(t, err)
	assert.Equal(t, len(sampleTags), n)

	for i, tag := range data.Tags {
		tile, err := imaging.Open(filepath.Join(tilesDir, tileName(i, tag.Text)))
		require.NoError(t, err)
		assert.Equal(t, tag.Region.Width, tile.Bounds().Dx())
		assert.Equal(t, tag.Region.Height, tile.Bounds().Dy())
	}
}

func TestUnpackWithoutImage(t *testing.T) {
	opts := DefaultOptions()
	opts.OutputDir = t.TempDir()
	opts.Formats = []string{"pdf"}
	data := newCloudData(sampleLayouter(t, cloud.SectorRings), sampleTags)

	_, err := writeOutputs(data, &opts, log.New(io.Discard))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(opts.OutputDir, cloudImageName))
	assert.True(t, os.IsNotExist(err))

	_, err = unpack(filepath.Join(opts.OutputDir, cloudJSONName), t.TempDir())
	assert.Error(t, err)
}
