package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHexColor(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"#fff", false},
		{"#4296fa", false},
		{"#4d4d4de6", false},
		{"4296fa", true},
		{"#12345", true},
		{"#zzzzzz", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := ValidateHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0000")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 0.0, c.G, 1e-9)
	assert.InDelta(t, 1.0, c.A, 1e-9)

	c, err = ParseColor("#00000080")
	require.NoError(t, err)
	assert.InDelta(t, 128.0/255, c.A, 1e-9)

	_, err = ParseColor("")
	assert.Error(t, err)
	_, err = ParseColor("red")
	assert.Error(t, err)
}

func TestMerge_FillsEmptyTokens(t *testing.T) {
	p := Merge(Palette{Accent: "#ff8800"}, true)

	assert.Equal(t, "#ff8800", p.Accent)
	assert.Equal(t, DefaultDarkPalette().Border, p.Border)
	assert.Equal(t, DefaultDarkPalette().Destructive, p.Destructive)

	light := Merge(Palette{Destructive: "#000000"}, false)
	assert.Equal(t, DefaultLightPalette().Destructive, light.Destructive)
}

func TestPaletteValidate(t *testing.T) {
	require.NoError(t, DefaultDarkPalette().Validate())
	require.NoError(t, DefaultLightPalette().Validate())

	err := Palette{Accent: "blue"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accent")
}

func TestDefaultDarkTheme(t *testing.T) {
	th := DefaultDarkPalette().Theme()

	assert.InDelta(t, 0.26, th.Accent.R, 0.01)
	assert.InDelta(t, 0.59, th.Accent.G, 0.01)
	assert.InDelta(t, 0.98, th.Accent.B, 0.01)
	assert.InDelta(t, 0.25, th.Border.R, 0.01)
	assert.InDelta(t, 0.3, th.ZoneIdle.R, 0.01)
	assert.InDelta(t, 0.9, th.ZoneIdle.A, 0.01)
}

func TestThemeFallsBackOnBadToken(t *testing.T) {
	th := Palette{Accent: "nope"}.Theme()
	assert.Equal(t, 1.0, th.Accent.R)
	assert.Equal(t, 1.0, th.Accent.B)
}
