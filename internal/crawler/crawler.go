// Package crawler opens a page in a headless browser and reports its
// interactive elements. It only reads the page; nothing is clicked or typed.
package crawler

import (
	"context"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/devices"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/pkg/errors"

	"github.com/v0xg/csharpgen/internal/logger"
)

type Options struct {
	Width   int
	Height  int
	Timeout time.Duration
	// BinPath overrides browser discovery.
	BinPath string
	// ProfileDir reuses a Chrome/Chromium profile for authenticated pages.
	// The browser owning it must be closed first.
	ProfileDir string
	// Device, when set, is emulated instead of the Width x Height viewport.
	Device *devices.Device
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = 1280
	}
	if o.Height == 0 {
		o.Height = 720
	}
	if o.Timeout == 0 {
		o.Timeout = 30 * time.Second
	}
	return o
}

// Inspect loads url and returns its page map.
func Inspect(ctx context.Context, url string, opts Options) (*PageMap, error) {
	opts = opts.withDefaults()
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	bin := opts.BinPath
	if bin == "" {
		bin, _ = launcher.LookPath()
	}
	l := launcher.New().Context(ctx).Bin(bin).Headless(true)
	if opts.ProfileDir != "" {
		l = l.UserDataDir(opts.ProfileDir)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return nil, errors.Wrap(err, "launch browser")
	}
	defer l.Kill()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, errors.Wrap(err, "connect to browser")
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", url)
	}
	if opts.Device != nil {
		if err := page.Emulate(*opts.Device); err != nil {
			return nil, errors.Wrapf(err, "emulate %s", opts.Device.Title)
		}
	} else if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             opts.Width,
		Height:            opts.Height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, errors.Wrap(err, "set viewport")
	}
	if err := page.WaitLoad(); err != nil {
		return nil, errors.Wrapf(err, "load %s", url)
	}
	// Persistent connections never go idle; give up after a few seconds.
	page.Timeout(5*time.Second).WaitRequestIdle(500*time.Millisecond, nil, nil, nil)()
	waitForInteractiveElements(ctx, page, 5*time.Second)

	return extract(ctx, page)
}

func extract(ctx context.Context, page *rod.Page) (*PageMap, error) {
	info, err := page.Eval(`() => ({url: location.href, title: document.title})`)
	if err != nil {
		return nil, errors.Wrap(err, "read page info")
	}
	elements, err := page.Eval(extractElementsJS)
	if err != nil {
		return nil, errors.Wrap(err, "extract elements")
	}
	frames, err := page.Eval(extractFramesJS)
	if err != nil {
		return nil, errors.Wrap(err, "extract frames")
	}

	var raw []rawElement
	for _, v := range elements.Value.Arr() {
		raw = append(raw, rawElement{
			Role:        v.Get("role").String(),
			Name:        v.Get("name").String(),
			Label:       v.Get("label").String(),
			Placeholder: v.Get("placeholder").String(),
			TestID:      v.Get("testId").String(),
			CSS:         v.Get("css").String(),
		})
	}
	pm := &PageMap{
		URL:      info.Value.Get("url").String(),
		Title:    info.Value.Get("title").String(),
		Elements: dedupe(raw),
	}
	for _, v := range frames.Value.Arr() {
		pm.Frames = append(pm.Frames, Frame{
			Selector: v.Get("css").String(),
			Name:     v.Get("name").String(),
			URL:      v.Get("url").String(),
		})
	}
	return report(ctx, pm), nil
}

func report(ctx context.Context, pm *PageMap) *PageMap {
	logger.Debug(ctx, "%s: %d elements, %d frames", pm.URL, len(pm.Elements), len(pm.Frames))
	return pm
}

// waitForInteractiveElements polls until something interactive is visible.
// Client-rendered pages often have none right after load.
func waitForInteractiveElements(ctx context.Context, page *rod.Page, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		res, err := page.Eval(countVisibleJS)
		if err == nil && res.Value.Int() > 0 {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(200 * time.Millisecond):
		}
	}
}

const countVisibleJS = `() => {
	let visible = 0;
	document.querySelectorAll('button, [role="button"], input:not([type="hidden"]), textarea, select, a[href]')
		.forEach(el => { if (el.offsetParent) visible++; });
	return visible;
}`

const cssPathJS = `
	function validIdent(s) {
		return !!s && !/^-?[0-9]/.test(s) && !/[.:#\[\]()>~+*\/\\ ]/.test(s);
	}
	function cssPath(el) {
		if (validIdent(el.id)) return '#' + el.id;
		if (el.name) return el.tagName.toLowerCase() + '[name="' + el.name + '"]';
		const parent = el.parentElement;
		if (!parent) return el.tagName.toLowerCase();
		const index = Array.from(parent.children).indexOf(el) + 1;
		return cssPath(parent) + ' > ' + el.tagName.toLowerCase() + ':nth-child(' + index + ')';
	}
`

const extractElementsJS = `() => {` + cssPathJS + `
	function implicitRole(el) {
		const tag = el.tagName.toLowerCase();
		const type = (el.getAttribute('type') || '').toLowerCase();
		if (tag === 'button') return 'button';
		if (tag === 'a') return 'link';
		if (tag === 'select') return 'combobox';
		if (tag === 'textarea') return 'textbox';
		if (tag === 'input') {
			if (['submit', 'button', 'reset'].includes(type)) return 'button';
			if (type === 'checkbox') return 'checkbox';
			if (type === 'radio') return 'radio';
			return 'textbox';
		}
		return '';
	}
	function labelText(el) {
		if (el.labels && el.labels.length) return el.labels[0].textContent.trim();
		return '';
	}
	const out = [];
	document.querySelectorAll('button, [role], a[href], input:not([type="hidden"]), textarea, select').forEach(el => {
		if (!el.offsetParent) return;
		const href = el.getAttribute('href');
		if (href && (href.startsWith('#') || href.startsWith('javascript:'))) return;
		const role = el.getAttribute('role') || implicitRole(el);
		if (!role) return;
		const name = (el.getAttribute('aria-label') || labelText(el) || el.textContent || el.value || '').trim().slice(0, 60);
		out.push({
			role: role,
			name: name,
			label: labelText(el),
			placeholder: el.getAttribute('placeholder') || '',
			testId: el.getAttribute('data-testid') || '',
			css: cssPath(el),
		});
	});
	return out;
}`

const extractFramesJS = `() => {` + cssPathJS + `
	return Array.from(document.querySelectorAll('iframe')).map(el => ({
		css: cssPath(el),
		name: el.getAttribute('name') || '',
		url: el.src || '',
	}));
}`
