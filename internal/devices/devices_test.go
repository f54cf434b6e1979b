package devices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v0xg/csharpgen/internal/options"
)

// Keys of Playwright's deviceDescriptorsSource.json that the table draws from.
var playwrightNames = map[string]bool{
	"Galaxy S5": true, "Galaxy S8": true, "Galaxy S9+": true, "Galaxy Tab S4": true,
	"iPad (gen 6)": true, "iPad (gen 7)": true, "iPad Mini": true, "iPad Pro 11": true,
	"iPhone 6": true, "iPhone 7": true, "iPhone 8": true, "iPhone SE": true, "iPhone X": true,
	"iPhone XR": true, "iPhone 11": true, "iPhone 12": true, "iPhone 13": true,
	"Moto G4": true, "Nexus 4": true, "Nexus 5": true, "Nexus 5X": true, "Nexus 6": true,
	"Nexus 6P": true, "Nexus 7": true, "Nexus 10": true, "Pixel 2": true, "Pixel 2 XL": true,
	"Pixel 3": true, "Pixel 4": true, "Pixel 5": true, "Pixel 7": true,
}

func TestNamesArePlaywrightDescriptors(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	for _, name := range names {
		assert.True(t, playwrightNames[name], "%q is not a Playwright device name", name)
	}
	for _, rodOnly := range []string{"iPhone 6/7/8", "iPad", "iPad Pro"} {
		_, ok := Lookup(rodOnly)
		assert.False(t, ok, rodOnly)
	}
}

func TestLookupIPhone(t *testing.T) {
	preset, ok := Lookup("iPhone X")
	require.True(t, ok)

	assert.Contains(t, preset.UserAgent, "iPhone OS 11_0")
	assert.Equal(t, &options.Size{Width: 375, Height: 812}, preset.Viewport)
	assert.Equal(t, options.Float(3), preset.DeviceScaleFactor)
	assert.Equal(t, options.Bool(true), preset.IsMobile)
	assert.Equal(t, options.Bool(true), preset.HasTouch)
}

func TestLookupPixel2(t *testing.T) {
	preset, ok := Lookup("Pixel 2")
	require.True(t, ok)
	assert.Equal(t, &options.Size{Width: 411, Height: 731}, preset.Viewport)
	assert.Equal(t, options.Float(2.625), preset.DeviceScaleFactor)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("Commodore 64")
	assert.False(t, ok)
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "Pixel 2")
}

func TestEmulation(t *testing.T) {
	d, ok := Emulation("iPad Mini")
	require.True(t, ok)
	assert.Equal(t, "iPad Mini", d.Title)
	assert.ElementsMatch(t, []string{"touch", "mobile"}, d.Capabilities)
	assert.Equal(t, 2.0, d.Screen.DevicePixelRatio)
	assert.Equal(t, 768, d.Screen.Vertical.Width)
	assert.Equal(t, 1024, d.Screen.Vertical.Height)
	assert.Equal(t, 1024, d.Screen.Horizontal.Width)

	metrics := d.MetricsEmulation()
	require.NotNil(t, metrics)
	assert.Equal(t, 768, metrics.Width)
	assert.True(t, metrics.Mobile)

	_, ok = Emulation("Commodore 64")
	assert.False(t, ok)
}

func TestSanitizeDropsFieldsEqualToPreset(t *testing.T) {
	preset, ok := Lookup("Pixel 2")
	require.True(t, ok)
	opts := options.ContextOptions{
		UserAgent:         preset.UserAgent,
		Viewport:          &options.Size{Width: 411, Height: 731},
		DeviceScaleFactor: options.Float(2.625),
		IsMobile:          options.Bool(true),
		HasTouch:          options.Bool(true),
	}

	lit, err := Sanitize(preset, opts).Literal()
	require.NoError(t, err)
	assert.Empty(t, lit)
}

func TestSanitizeKeepsDifferingFields(t *testing.T) {
	preset, ok := Lookup("Pixel 2")
	require.True(t, ok)
	opts := options.ContextOptions{
		UserAgent:         preset.UserAgent,
		Viewport:          &options.Size{Width: 1, Height: 2},
		DeviceScaleFactor: options.Float(2),
		ColorScheme:       "dark",
	}

	got := Sanitize(preset, opts)
	assert.Empty(t, got.UserAgent)
	assert.Equal(t, &options.Size{Width: 1, Height: 2}, got.Viewport)
	assert.Equal(t, options.Float(2), got.DeviceScaleFactor)
	assert.Equal(t, "dark", got.ColorScheme)
}
