package options

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Generator configures the header and footer of a generated program.
type Generator struct {
	BrowserName string         `json:"browserName,omitempty" toml:"browser,omitempty"`
	Launch      LaunchOptions  `json:"launchOptions" toml:"launch"`
	Context     ContextOptions `json:"contextOptions" toml:"context"`
	// DeviceName selects a device preset the context is seeded from.
	DeviceName string `json:"deviceName,omitempty" toml:"device,omitempty"`
	// SaveStorage is the path the storage state is saved to when the session ends.
	SaveStorage string `json:"saveStorage,omitempty" toml:"save_storage,omitempty"`
}

// WithDefaults fills unset fields.
func (g Generator) WithDefaults() Generator {
	if g.BrowserName == "" {
		g.BrowserName = "chromium"
	}
	return g
}

// Override returns g with every non-empty top-level scalar of o applied on top.
// Launch and context options are replaced only when o sets any of them.
func (g Generator) Override(o Generator) Generator {
	if o.BrowserName != "" {
		g.BrowserName = o.BrowserName
	}
	if o.DeviceName != "" {
		g.DeviceName = o.DeviceName
	}
	if o.SaveStorage != "" {
		g.SaveStorage = o.SaveStorage
	}
	if lit, err := o.Launch.Literal(); err == nil && len(lit) > 0 {
		g.Launch = o.Launch
	}
	if lit, err := o.Context.Literal(); err == nil && len(lit) > 0 {
		g.Context = o.Context
	}
	return g
}

type Size struct {
	Width  int `json:"width" toml:"width"`
	Height int `json:"height" toml:"height"`
}

type Geolocation struct {
	Latitude  float64  `json:"latitude" toml:"latitude"`
	Longitude float64  `json:"longitude" toml:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty" toml:"accuracy,omitempty"`
}

type Proxy struct {
	Server   string `json:"server" toml:"server"`
	Bypass   string `json:"bypass,omitempty" toml:"bypass,omitempty"`
	Username string `json:"username,omitempty" toml:"username,omitempty"`
	Password string `json:"password,omitempty" toml:"password,omitempty"`
}

type HTTPCredentials struct {
	Username string `json:"username" toml:"username"`
	Password string `json:"password" toml:"password"`
}

// LaunchOptions mirrors BrowserTypeLaunchOptions.
type LaunchOptions struct {
	Args           []string `json:"args,omitempty" toml:"args,omitempty"`
	Channel        string   `json:"channel,omitempty" toml:"channel,omitempty"`
	DownloadsPath  string   `json:"downloadsPath,omitempty" toml:"downloadsPath,omitempty"`
	ExecutablePath string   `json:"executablePath,omitempty" toml:"executablePath,omitempty"`
	Headless       *bool    `json:"headless,omitempty" toml:"headless,omitempty"`
	Proxy          *Proxy   `json:"proxy,omitempty" toml:"proxy,omitempty"`
	SlowMo         *float64 `json:"slowMo,omitempty" toml:"slowMo,omitempty"`
	Timeout        *float64 `json:"timeout,omitempty" toml:"timeout,omitempty"`
}

// ContextOptions mirrors BrowserNewContextOptions. HAR and video recording
// settings are flat, the way the .NET bindings expose them.
type ContextOptions struct {
	AcceptDownloads      *bool            `json:"acceptDownloads,omitempty" toml:"acceptDownloads,omitempty"`
	BypassCSP            *bool            `json:"bypassCSP,omitempty" toml:"bypassCSP,omitempty"`
	ColorScheme          string           `json:"colorScheme,omitempty" toml:"colorScheme,omitempty"`
	DeviceScaleFactor    *float64         `json:"deviceScaleFactor,omitempty" toml:"deviceScaleFactor,omitempty"`
	Geolocation          *Geolocation     `json:"geolocation,omitempty" toml:"geolocation,omitempty"`
	HasTouch             *bool            `json:"hasTouch,omitempty" toml:"hasTouch,omitempty"`
	HTTPCredentials      *HTTPCredentials `json:"httpCredentials,omitempty" toml:"httpCredentials,omitempty"`
	IgnoreHTTPSErrors    *bool            `json:"ignoreHTTPSErrors,omitempty" toml:"ignoreHTTPSErrors,omitempty"`
	IsMobile             *bool            `json:"isMobile,omitempty" toml:"isMobile,omitempty"`
	JavaScriptEnabled    *bool            `json:"javaScriptEnabled,omitempty" toml:"javaScriptEnabled,omitempty"`
	Locale               string           `json:"locale,omitempty" toml:"locale,omitempty"`
	Offline              *bool            `json:"offline,omitempty" toml:"offline,omitempty"`
	Permissions          []string         `json:"permissions,omitempty" toml:"permissions,omitempty"`
	Proxy                *Proxy           `json:"proxy,omitempty" toml:"proxy,omitempty"`
	RecordHarContent     string           `json:"recordHarContent,omitempty" toml:"recordHarContent,omitempty"`
	RecordHarMode        string           `json:"recordHarMode,omitempty" toml:"recordHarMode,omitempty"`
	RecordHarOmitContent *bool            `json:"recordHarOmitContent,omitempty" toml:"recordHarOmitContent,omitempty"`
	RecordHarPath        string           `json:"recordHarPath,omitempty" toml:"recordHarPath,omitempty"`
	RecordHarURLFilter   string           `json:"recordHarUrlFilter,omitempty" toml:"recordHarUrlFilter,omitempty"`
	RecordVideoDir       string           `json:"recordVideoDir,omitempty" toml:"recordVideoDir,omitempty"`
	RecordVideoSize      *Size            `json:"recordVideoSize,omitempty" toml:"recordVideoSize,omitempty"`
	ServiceWorkers       string           `json:"serviceWorkers,omitempty" toml:"serviceWorkers,omitempty"`
	StorageState         string           `json:"storageState,omitempty" toml:"storageState,omitempty"`
	TimezoneID           string           `json:"timezoneId,omitempty" toml:"timezoneId,omitempty"`
	UserAgent            string           `json:"userAgent,omitempty" toml:"userAgent,omitempty"`
	Viewport             *Size            `json:"viewport,omitempty" toml:"viewport,omitempty"`
}

// Literal returns the launch options keyed by their option names, with unset
// fields left out.
func (l LaunchOptions) Literal() (map[string]any, error) {
	return toLiteral(l)
}

// Literal returns the context options keyed by their option names, with unset
// fields left out.
func (c ContextOptions) Literal() (map[string]any, error) {
	return toLiteral(c)
}

func toLiteral(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshal options")
	}
	m := map[string]any{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "unmarshal options")
	}
	return m, nil
}

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }
