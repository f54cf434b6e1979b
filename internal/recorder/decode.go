package recorder

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/v0xg/csharpgen/internal/options"
)

// Session is a recorded session as exchanged with the recorder: generator
// options plus the actions in recording order.
type Session struct {
	Options options.Generator `json:"options"`
	Actions []ActionInContext `json:"actions"`
}

type wireSignal struct {
	Name          string `json:"name"`
	DialogAlias   string `json:"dialogAlias,omitempty"`
	DownloadAlias string `json:"downloadAlias,omitempty"`
	PopupAlias    string `json:"popupAlias,omitempty"`
	URL           string `json:"url,omitempty"`
}

type wireAction struct {
	Name       Kind         `json:"name"`
	Selector   string       `json:"selector,omitempty"`
	URL        string       `json:"url,omitempty"`
	Text       string       `json:"text,omitempty"`
	Key        string       `json:"key,omitempty"`
	Button     string       `json:"button,omitempty"`
	Modifiers  Modifiers    `json:"modifiers,omitempty"`
	ClickCount int          `json:"clickCount,omitempty"`
	Position   *Point       `json:"position,omitempty"`
	Files      []string     `json:"files,omitempty"`
	Options    []string     `json:"options,omitempty"`
	Signals    []wireSignal `json:"signals,omitempty"`
}

type wireActionInContext struct {
	Frame  FrameContext `json:"frame"`
	Action wireAction   `json:"action"`
}

// DecodeSession reads a JSON session document.
func DecodeSession(r io.Reader) (*Session, error) {
	var s Session
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decode session")
	}
	return &s, nil
}

// DecodeActions parses a JSON array of actions in context.
func DecodeActions(data []byte) ([]ActionInContext, error) {
	var actions []ActionInContext
	if err := json.Unmarshal(data, &actions); err != nil {
		return nil, errors.Wrap(err, "decode actions")
	}
	return actions, nil
}

func (a *ActionInContext) UnmarshalJSON(data []byte) error {
	var w wireActionInContext
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	action, err := w.Action.toAction()
	if err != nil {
		return err
	}
	a.Frame = w.Frame
	a.Action = action
	return nil
}

func (a ActionInContext) MarshalJSON() ([]byte, error) {
	if a.Action == nil {
		return nil, errors.New("action in context has no action")
	}
	return json.Marshal(wireActionInContext{Frame: a.Frame, Action: fromAction(a.Action)})
}

func (w wireAction) toAction() (Action, error) {
	signals, err := decodeSignals(w.Signals)
	if err != nil {
		return nil, errors.Wrapf(err, "action %q", w.Name)
	}
	switch w.Name {
	case KindOpenPage:
		return OpenPage{Signals: signals, URL: w.URL}, nil
	case KindClosePage:
		return ClosePage{Signals: signals}, nil
	case KindClick:
		button := w.Button
		if button == "" {
			button = "left"
		}
		return Click{
			Signals:    signals,
			Selector:   w.Selector,
			Button:     button,
			Modifiers:  w.Modifiers,
			ClickCount: w.ClickCount,
			Position:   w.Position,
		}, nil
	case KindCheck:
		return Check{Signals: signals, Selector: w.Selector}, nil
	case KindUncheck:
		return Uncheck{Signals: signals, Selector: w.Selector}, nil
	case KindFill:
		return Fill{Signals: signals, Selector: w.Selector, Text: w.Text}, nil
	case KindSetInputFiles:
		return SetInputFiles{Signals: signals, Selector: w.Selector, Files: w.Files}, nil
	case KindPress:
		return Press{Signals: signals, Selector: w.Selector, Key: w.Key, Modifiers: w.Modifiers}, nil
	case KindNavigate:
		return Navigate{Signals: signals, URL: w.URL}, nil
	case KindSelect:
		return Select{Signals: signals, Selector: w.Selector, Options: w.Options}, nil
	}
	return nil, errors.Errorf("unknown action %q", w.Name)
}

func fromAction(a Action) wireAction {
	w := wireAction{Name: a.Kind()}
	for _, s := range a.AttachedSignals() {
		switch s := s.(type) {
		case Dialog:
			w.Signals = append(w.Signals, wireSignal{Name: s.signalName(), DialogAlias: s.Alias})
		case Download:
			w.Signals = append(w.Signals, wireSignal{Name: s.signalName(), DownloadAlias: s.Alias})
		case Popup:
			w.Signals = append(w.Signals, wireSignal{Name: s.signalName(), PopupAlias: s.Alias})
		case AssertNavigation:
			w.Signals = append(w.Signals, wireSignal{Name: s.signalName(), URL: s.URL})
		}
	}
	switch a := a.(type) {
	case OpenPage:
		w.URL = a.URL
	case ClosePage:
	case Click:
		w.Selector, w.Button, w.Modifiers, w.ClickCount, w.Position = a.Selector, a.Button, a.Modifiers, a.ClickCount, a.Position
	case Check:
		w.Selector = a.Selector
	case Uncheck:
		w.Selector = a.Selector
	case Fill:
		w.Selector, w.Text = a.Selector, a.Text
	case SetInputFiles:
		w.Selector, w.Files = a.Selector, a.Files
	case Press:
		w.Selector, w.Key, w.Modifiers = a.Selector, a.Key, a.Modifiers
	case Navigate:
		w.URL = a.URL
	case Select:
		w.Selector, w.Options = a.Selector, a.Options
	}
	return w
}

func decodeSignals(in []wireSignal) (Signals, error) {
	var out Signals
	for _, s := range in {
		switch s.Name {
		case "dialog":
			out.List = append(out.List, Dialog{Alias: s.DialogAlias})
		case "download":
			out.List = append(out.List, Download{Alias: s.DownloadAlias})
		case "popup":
			out.List = append(out.List, Popup{Alias: s.PopupAlias})
		case "navigation", "assertNavigation":
			out.List = append(out.List, AssertNavigation{URL: s.URL})
		default:
			return Signals{}, errors.Errorf("unknown signal %q", s.Name)
		}
	}
	return out, nil
}
