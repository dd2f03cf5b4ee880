package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagcloud2d/cloud"
)

func TestWriteCloudPDF(t *testing.T) {
	opts := DefaultOptions()
	data := newCloudData(sampleLayouter(t, cloud.SectorRings), sampleTags)
	path := filepath.Join(t.TempDir(), cloudPDFName)

	require.NoError(t, writeCloudPDF(data, &opts, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))
}

func TestWriteCloudPDFBadDir(t *testing.T) {
	opts := DefaultOptions()
	data := newCloudData(sampleLayouter(t, cloud.SectorRings), sampleTags)

	err := writeCloudPDF(data, &opts, filepath.Join(t.TempDir(), "missing", cloudPDFName))
	assert.Error(t, err)
}

func TestLabelFontSize(t *testing.T) {
	pdf := fpdf.New("P", "pt", "A4", "")

	wide := labelFontSize(pdf, "cloud", 200, 20)
	narrow := labelFontSize(pdf, "cloud", 20, 20)
	assert.InDelta(t, 16.0, wide, 1e-9)
	assert.Less(t, narrow, wide)

	pdf.SetFont("Helvetica", "", narrow)
	assert.LessOrEqual(t, pdf.GetStringWidth("cloud"), 20.0+1e-6)
}
