package recorder

// Signal is an asynchronous side effect observed while an action ran.
// Implementations: Dialog, Download, Popup and AssertNavigation.
type Signal interface {
	signalName() string
}

// Dialog records a dialog opened by the action. Alias is an ordinal suffix
// that keeps generated handler names unique; it may be empty.
type Dialog struct {
	Alias string
}

// Download records a download started by the action. Alias is an ordinal
// suffix appended to the generated download variable; it may be empty.
type Download struct {
	Alias string
}

// Popup records a page opened by the action. Alias is the variable name the
// new page is bound to, e.g. "page1".
type Popup struct {
	Alias string
}

// AssertNavigation records that the action navigated the page to URL.
type AssertNavigation struct {
	URL string
}

func (Dialog) signalName() string           { return "dialog" }
func (Download) signalName() string         { return "download" }
func (Popup) signalName() string            { return "popup" }
func (AssertNavigation) signalName() string { return "navigation" }

// WithSignals builds the signal list embedded in an action.
func WithSignals(signals ...Signal) Signals {
	return Signals{List: signals}
}

// SignalSet holds at most one signal of each kind. Nil fields are absent.
type SignalSet struct {
	Dialog           *Dialog
	Download         *Download
	Popup            *Popup
	AssertNavigation *AssertNavigation
}

// ExtractSignals collects the signals attached to a. When a kind is recorded
// more than once the last occurrence wins.
func ExtractSignals(a Action) SignalSet {
	var set SignalSet
	for _, s := range a.AttachedSignals() {
		switch s := s.(type) {
		case Dialog:
			set.Dialog = &s
		case Download:
			set.Download = &s
		case Popup:
			set.Popup = &s
		case AssertNavigation:
			set.AssertNavigation = &s
		}
	}
	return set
}
