// Package devices provides the device presets a browser context can be seeded
// from. Presets are keyed by Playwright's device descriptor names, so a name
// that resolves here also resolves in the generated code's Devices lookup.
package devices

import (
	_ "embed"
	"encoding/json"
	"sort"

	"github.com/go-rod/rod/lib/devices"

	"github.com/v0xg/csharpgen/internal/options"
)

// descriptors.json is a subset of Playwright 1.48's deviceDescriptorsSource.json.
//
//go:embed descriptors.json
var descriptorsJSON []byte

var presets = mustParse(descriptorsJSON)

func mustParse(data []byte) map[string]options.ContextOptions {
	m := map[string]options.ContextOptions{}
	if err := json.Unmarshal(data, &m); err != nil {
		panic("devices: bad descriptor table: " + err.Error())
	}
	return m
}

// Lookup returns the preset registered under name.
func Lookup(name string) (options.ContextOptions, bool) {
	p, ok := presets[name]
	return p, ok
}

// Names lists the registered device names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Emulation converts the named preset into a rod device for emulating it in a
// Chromium page.
func Emulation(name string) (devices.Device, bool) {
	d, ok := presets[name]
	if !ok || d.Viewport == nil {
		return devices.Device{}, false
	}
	var caps []string
	if d.HasTouch != nil && *d.HasTouch {
		caps = append(caps, "touch")
	}
	if d.IsMobile != nil && *d.IsMobile {
		caps = append(caps, "mobile")
	}
	ratio := 1.0
	if d.DeviceScaleFactor != nil {
		ratio = *d.DeviceScaleFactor
	}
	w, h := d.Viewport.Width, d.Viewport.Height
	return devices.Device{
		Title:          name,
		Capabilities:   caps,
		UserAgent:      d.UserAgent,
		AcceptLanguage: "en",
		Screen: devices.Screen{
			DevicePixelRatio: ratio,
			Horizontal:       devices.ScreenSize{Width: h, Height: w},
			Vertical:         devices.ScreenSize{Width: w, Height: h},
		},
	}, true
}

// Sanitize returns opts without the fields whose values equal the preset's,
// compared field by field.
func Sanitize(preset, opts options.ContextOptions) options.ContextOptions {
	if preset.UserAgent != "" && opts.UserAgent == preset.UserAgent {
		opts.UserAgent = ""
	}
	if sameSize(preset.Viewport, opts.Viewport) {
		opts.Viewport = nil
	}
	if samePtr(preset.DeviceScaleFactor, opts.DeviceScaleFactor) {
		opts.DeviceScaleFactor = nil
	}
	if samePtr(preset.IsMobile, opts.IsMobile) {
		opts.IsMobile = nil
	}
	if samePtr(preset.HasTouch, opts.HasTouch) {
		opts.HasTouch = nil
	}
	return opts
}

func sameSize(a, b *options.Size) bool {
	return a != nil && b != nil && *a == *b
}

func samePtr[T comparable](a, b *T) bool {
	return a != nil && b != nil && *a == *b
}
