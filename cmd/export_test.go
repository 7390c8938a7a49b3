package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	flagText, flagMarkdown, flagJSON, flagPDF = false, false, false, false
}

func TestSelectRendererRequiresFormat(t *testing.T) {
	resetFlags()
	_, err := selectRenderer()
	assert.ErrorContains(t, err, "exactly one output format")
}

func TestSelectRendererRejectsMultipleFormats(t *testing.T) {
	resetFlags()
	flagText, flagPDF = true, true
	_, err := selectRenderer()
	assert.ErrorContains(t, err, "only one output format")
}

func TestSelectRendererExtensions(t *testing.T) {
	tests := []struct {
		name string
		set  func()
		ext  string
	}{
		{"text", func() { flagText = true }, ".txt"},
		{"markdown", func() { flagMarkdown = true }, ".md"},
		{"json", func() { flagJSON = true }, ".json"},
		{"pdf", func() { flagPDF = true }, ".pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			tt.set()
			r, err := selectRenderer()
			require.NoError(t, err)
			assert.Equal(t, tt.ext, r.Extension())
		})
	}
}
