package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatScalars(t *testing.T) {
	tests := []struct {
		name  string
		value any
		role  string
		want  string
	}{
		{"string", "hello", "", `"hello"`},
		{"escaped string", "say \"hi\"\n\\", "", `"say \"hi\"\n\\"`},
		{"control char", "a\x01b", "", `"a\u0001b"`},
		{"bool", true, "", "true"},
		{"int", 1280, "width", "1280"},
		{"float", 1.5, "deviceScaleFactor", "1.5"},
		{"nil", nil, "", "null"},
		{"latitude", 37.819722, "latitude", "37.819722m"},
		{"longitude integral", float64(-122), "longitude", "-122m"},
		{"accuracy keeps plain number", 10.5, "accuracy", "10.5"},
		{"color scheme enum", "dark", "colorScheme", "ColorScheme.Dark"},
		{"kebab enum", "no-preference", "colorScheme", "ColorScheme.NoPreference"},
		{"mouse button", "right", "button", "MouseButton.Right"},
		{"har content", "omit", "recordHarContent", "HarContentPolicy.Omit"},
		{"har mode", "minimal", "recordHarMode", "HarMode.Minimal"},
		{"service workers", "block", "serviceWorkers", "ServiceWorkerPolicy.Block"},
		{"pointer", ptr(3), "", "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.value, DefaultIndent, tt.role))
		})
	}
}

func TestFormatArrayAppliesRoleToEachElement(t *testing.T) {
	assert.Equal(t,
		"new[] { ContextPermission.Geolocation, ContextPermission.ClipboardRead }",
		Format([]string{"geolocation", "clipboard-read"}, DefaultIndent, "permissions"))
	assert.Equal(t,
		"new[] { KeyboardModifier.Shift, KeyboardModifier.Control }",
		Format([]any{"Shift", "Control"}, DefaultIndent, "modifiers"))
	assert.Equal(t, `new[] { "a.txt", "b.txt" }`, Format([]string{"a.txt", "b.txt"}, DefaultIndent, ""))
	assert.Equal(t, "new[] { }", Format([]any{}, DefaultIndent, ""))
}

func TestFormatObjectNamedAndNested(t *testing.T) {
	value := map[string]any{
		"viewport":     map[string]any{"width": 1280, "height": 720},
		"colorScheme":  "dark",
		"storageState": "auth.json",
		"geolocation":  map[string]any{"latitude": 1.5, "longitude": 2.0},
	}

	want := "new BrowserNewContextOptions\n" +
		"{\n" +
		"    ColorScheme = ColorScheme.Dark,\n" +
		"    Geolocation = new Geolocation\n" +
		"    {\n" +
		"        Latitude = 1.5m,\n" +
		"        Longitude = 2m,\n" +
		"    },\n" +
		"    StorageStatePath = \"auth.json\",\n" +
		"    ViewportSize = new ViewportSize\n" +
		"    {\n" +
		"        Height = 720,\n" +
		"        Width = 1280,\n" +
		"    },\n" +
		"}"
	assert.Equal(t, want, Format(value, DefaultIndent, "BrowserNewContextOptions"))
}

func TestFormatObjectAnonymous(t *testing.T) {
	assert.Equal(t, "{\n    X = 10,\n    Y = 20,\n}", Format(map[string]any{"y": 20, "x": 10}, DefaultIndent, ""))
}

func TestFormatObjectEmpty(t *testing.T) {
	assert.Equal(t, "", Format(map[string]any{}, DefaultIndent, ""))
	assert.Equal(t, "new BrowserTypeLaunchOptions()", Format(map[string]any{"headless": nil}, DefaultIndent, "BrowserTypeLaunchOptions"))
	assert.Equal(t, "new Proxy()", Constructor(nil, DefaultIndent, "Proxy"))
}

func TestFormatObjectDropsAbsentEntries(t *testing.T) {
	var missing *int
	out := Format(map[string]any{
		"locale":    "en-US",
		"userAgent": nil,
		"offline":   missing,
	}, DefaultIndent, "BrowserNewContextOptions")

	assert.Equal(t, "new BrowserNewContextOptions\n{\n    Locale = \"en-US\",\n}", out)
	assert.NotContains(t, out, "UserAgent")
	assert.NotContains(t, out, "Offline")
}

func TestFormatIsIndependentOfKeyOrder(t *testing.T) {
	keys := []string{"locale", "offline", "timezoneId", "userAgent", "hasTouch", "isMobile"}
	values := map[string]any{
		"locale":     "de-DE",
		"offline":    true,
		"timezoneId": "Europe/Berlin",
		"userAgent":  "agent",
		"hasTouch":   false,
		"isMobile":   true,
	}

	reference := Format(values, DefaultIndent, "BrowserNewContextOptions")
	for shift := range keys {
		rebuilt := make(map[string]any, len(keys))
		for i := range keys {
			k := keys[(i+shift)%len(keys)]
			rebuilt[k] = values[k]
		}
		assert.Equal(t, reference, Format(rebuilt, DefaultIndent, "BrowserNewContextOptions"))
	}
	assert.Equal(t, reference, Format(values, DefaultIndent, "BrowserNewContextOptions"))
}

func TestConstructorUsesTypeExpressionVerbatim(t *testing.T) {
	out := Constructor(map[string]any{"locale": "fr-FR"}, DefaultIndent, `BrowserNewContextOptions(playwright.Devices["Pixel 2"])`)
	assert.Equal(t, "new BrowserNewContextOptions(playwright.Devices[\"Pixel 2\"])\n{\n    Locale = \"fr-FR\",\n}", out)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "ViewportSize", TypeName("viewport"))
	assert.Equal(t, "ProxySettings", TypeName("proxy"))
	assert.Equal(t, "HttpCredentials", TypeName("httpCredentials"))
	assert.Equal(t, "StorageStatePath", PropertyName("storageState"))
	assert.Equal(t, "ViewportSize", PropertyName("viewport"))
	assert.Equal(t, "IgnoreHTTPSErrors", PropertyName("ignoreHTTPSErrors"))
	assert.Equal(t, "", Pascal(""))
}

func ptr[T any](v T) *T {
	return &v
}
