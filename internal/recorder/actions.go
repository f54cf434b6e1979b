package recorder

// Kind is the wire name of an action.
type Kind string

const (
	KindOpenPage      Kind = "openPage"
	KindClosePage     Kind = "closePage"
	KindClick         Kind = "click"
	KindCheck         Kind = "check"
	KindUncheck       Kind = "uncheck"
	KindFill          Kind = "fill"
	KindSetInputFiles Kind = "setInputFiles"
	KindPress         Kind = "press"
	KindNavigate      Kind = "navigate"
	KindSelect        Kind = "select"
)

// Action is a single recorded interaction. The set of implementations is
// closed: OpenPage, ClosePage, Click, Check, Uncheck, Fill, SetInputFiles,
// Press, Navigate and Select.
type Action interface {
	Kind() Kind
	// AttachedSignals returns the side effects recorded with the action.
	AttachedSignals() []Signal
	action()
}

// Signals is embedded by every action. Embedding it does not make a type an
// Action; the unexported marker lives on the action types themselves.
type Signals struct {
	List []Signal
}

func (s Signals) AttachedSignals() []Signal { return s.List }

func (OpenPage) action()      {}
func (ClosePage) action()     {}
func (Click) action()         {}
func (Check) action()         {}
func (Uncheck) action()       {}
func (Fill) action()          {}
func (SetInputFiles) action() {}
func (Press) action()         {}
func (Navigate) action()      {}
func (Select) action()        {}

// Point is a position relative to the element's top-left corner.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type OpenPage struct {
	Signals
	URL string
}

type ClosePage struct {
	Signals
}

type Click struct {
	Signals
	Selector   string
	Button     string // left, right or middle
	Modifiers  Modifiers
	ClickCount int
	Position   *Point
}

type Check struct {
	Signals
	Selector string
}

type Uncheck struct {
	Signals
	Selector string
}

type Fill struct {
	Signals
	Selector string
	Text     string
}

type SetInputFiles struct {
	Signals
	Selector string
	Files    []string
}

type Press struct {
	Signals
	Selector  string
	Key       string
	Modifiers Modifiers
}

type Navigate struct {
	Signals
	URL string
}

type Select struct {
	Signals
	Selector string
	Options  []string
}

func (OpenPage) Kind() Kind      { return KindOpenPage }
func (ClosePage) Kind() Kind     { return KindClosePage }
func (Click) Kind() Kind         { return KindClick }
func (Check) Kind() Kind         { return KindCheck }
func (Uncheck) Kind() Kind       { return KindUncheck }
func (Fill) Kind() Kind          { return KindFill }
func (SetInputFiles) Kind() Kind { return KindSetInputFiles }
func (Press) Kind() Kind         { return KindPress }
func (Navigate) Kind() Kind      { return KindNavigate }
func (Select) Kind() Kind        { return KindSelect }

// FrameContext identifies the page or frame an action ran in.
type FrameContext struct {
	PageAlias   string `json:"pageAlias"`
	IsMainFrame bool   `json:"isMainFrame"`
	// SelectorsChain lists the iframe selectors leading from the page to the frame.
	SelectorsChain []string `json:"selectorsChain,omitempty"`
	Name           string   `json:"name,omitempty"`
	URL            string   `json:"url,omitempty"`
}

// ActionInContext pairs an action with the frame it was recorded in.
type ActionInContext struct {
	Frame  FrameContext
	Action Action
}
