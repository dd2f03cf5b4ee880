package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tagcloud2d/cloud"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := LoadOptions("", log.New(io.Discard))
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
	assert.NoError(t, opts.Validate())
}

func TestLoadOptionsFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cloud.toml", `
strategy = "spiral"
max_tags = 10
formats = ["png", "pdf"]
palette = ["red", "SteelBlue"]
bogus = 1
`)
	var buf bytes.Buffer
	opts, err := LoadOptions(path, log.New(&buf))
	require.NoError(t, err)

	assert.Equal(t, cloud.AngularSpiral, opts.Strategy)
	assert.Equal(t, 10, opts.MaxTags)
	assert.Equal(t, []string{"png", "pdf"}, opts.Formats)
	assert.Equal(t, []string{"red", "SteelBlue"}, opts.Palette)
	assert.Equal(t, DefaultOptions().Padding, opts.Padding)
	assert.Contains(t, buf.String(), "bogus")
}

func TestLoadOptionsErrors(t *testing.T) {
	dir := t.TempDir()
	logger := log.New(io.Discard)

	_, err := LoadOptions(filepath.Join(dir, "missing.toml"), logger)
	assert.Error(t, err)

	_, err = LoadOptions(writeFile(t, dir, "bad.toml", `strategy = "maxrects"`), logger)
	assert.Error(t, err)

	_, err = LoadOptions(writeFile(t, dir, "scale.toml", "min_scale = 3.0\nmax_scale = 2.0"), logger)
	assert.Error(t, err)
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(o *Options)
	}{
		{"sort", func(o *Options) { o.Sort = "random" }},
		{"zero scale", func(o *Options) { o.MinScale = 0 }},
		{"negative padding", func(o *Options) { o.Padding = -1 }},
		{"negative grid", func(o *Options) { o.Grid = -5 }},
		{"format", func(o *Options) { o.Formats = []string{"svg"} }},
		{"color", func(o *Options) { o.Border = "no-such-color" }},
		{"empty palette", func(o *Options) { o.Palette = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			assert.Error(t, opts.Validate())
		})
	}
}

func TestOptionFlagsOverrideOnlyChanged(t *testing.T) {
	var flags optionFlags
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--strategy", "spiral", "--max-tags", "5", "--format", "png,pdf"}))

	opts := DefaultOptions()
	opts.Padding = 7
	require.NoError(t, flags.apply(cmd, &opts))

	assert.Equal(t, cloud.AngularSpiral, opts.Strategy)
	assert.Equal(t, 5, opts.MaxTags)
	assert.Equal(t, []string{"png", "pdf"}, opts.Formats)
	assert.Equal(t, 7, opts.Padding)
	assert.True(t, opts.HasFormat("PDF"))
}

func TestOptionFlagsInvalidStrategy(t *testing.T) {
	var flags optionFlags
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--strategy", "maxrects"}))

	opts := DefaultOptions()
	assert.ErrorIs(t, flags.apply(cmd, &opts), cloud.ErrInvalidStrategy)
}

func TestOptionsEncodeCanBeLoaded(t *testing.T) {
	opts := DefaultOptions()
	opts.Strategy = cloud.AngularSpiral
	opts.Grid = 25

	var buf bytes.Buffer
	require.NoError(t, opts.Encode(&buf))

	var decoded Options
	_, err := toml.Decode(buf.String(), &decoded)
	require.NoError(t, err)
	assert.Equal(t, opts, decoded)
}
