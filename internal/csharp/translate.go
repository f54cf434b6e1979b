package csharp

import (
	"fmt"
	"strings"

	"github.com/v0xg/csharpgen/internal/codebuf"
	"github.com/v0xg/csharpgen/internal/literal"
	"github.com/v0xg/csharpgen/internal/locator"
	"github.com/v0xg/csharpgen/internal/recorder"
)

// GenerateAction renders the statements reproducing one action. Page
// lifecycle actions render nothing in test-runner modes, where the fixture
// owns the page.
func (g *Generator) GenerateAction(ac recorder.ActionInContext) string {
	action := ac.Action
	pageAlias := g.pageAlias(ac.Frame.PageAlias)
	buf := codebuf.New(actionOffset)

	switch a := action.(type) {
	case recorder.OpenPage:
		if g.testRunner() {
			return ""
		}
		buf.Add(fmt.Sprintf("var %s = await context.NewPageAsync();", pageAlias))
		if a.URL != "" && a.URL != "about:blank" && a.URL != "chrome://newtab/" {
			buf.Add(fmt.Sprintf("await %s.GotoAsync(%s);", pageAlias, literal.Quote(a.URL)))
		}
		return buf.String()
	case recorder.ClosePage:
		if g.testRunner() {
			return ""
		}
		buf.Add(fmt.Sprintf("await %s.CloseAsync();", pageAlias))
		return buf.String()
	}

	signals := recorder.ExtractSignals(action)
	buf.Add(actionCall(subject(ac.Frame, pageAlias, action), action))

	// Download wraps first and popup second, so with both present the popup
	// wait is the outer call.
	if signals.Download != nil {
		buf.Prepend(fmt.Sprintf("var download%s = await %s.RunAndWaitForDownloadAsync(async () =>\n{", signals.Download.Alias, pageAlias))
		buf.Add("});")
	}
	if signals.Popup != nil {
		buf.Prepend(fmt.Sprintf("var %s = await %s.RunAndWaitForPopupAsync(async () =>\n{", signals.Popup.Alias, pageAlias))
		buf.Add("});")
	}
	if signals.Dialog != nil {
		buf.Prepend(dialogHandler(pageAlias, signals.Dialog.Alias))
	}
	if signals.AssertNavigation != nil {
		buf.Add(fmt.Sprintf("await %s.WaitForURLAsync(%s);", pageAlias, literal.Quote(signals.AssertNavigation.URL)))
	}
	return buf.String()
}

// pageAlias maps the recorder's main page onto the Page property of the
// PageTest base class in test-runner modes.
func (g *Generator) pageAlias(alias string) string {
	if g.testRunner() && alias == "page" {
		return "Page"
	}
	return alias
}

// subject is the expression an action is invoked on.
func subject(frame recorder.FrameContext, pageAlias string, action recorder.Action) string {
	if frame.IsMainFrame {
		return pageAlias
	}
	if _, navigate := action.(recorder.Navigate); !navigate && len(frame.SelectorsChain) > 0 {
		var sb strings.Builder
		sb.WriteString(pageAlias)
		for _, selector := range frame.SelectorsChain {
			sb.WriteString(".FrameLocator(" + literal.Quote(selector) + ")")
		}
		return sb.String()
	}
	if frame.Name != "" {
		return pageAlias + ".Frame(" + literal.Quote(frame.Name) + ")"
	}
	return pageAlias + ".FrameByUrl(" + literal.Quote(frame.URL) + ")"
}

func dialogHandler(pageAlias, alias string) string {
	handler := fmt.Sprintf("%s_Dialog%s_EventHandler", pageAlias, alias)
	return fmt.Sprintf(`void %[2]s(object sender, IDialog dialog)
{
    Console.WriteLine($"Dialog message: {dialog.Message}");
    dialog.DismissAsync();
    %[1]s.Dialog -= %[2]s;
}
%[1]s.Dialog += %[2]s;`, pageAlias, handler)
}

// actionCall maps an action onto a single awaited call.
func actionCall(subject string, action recorder.Action) string {
	switch a := action.(type) {
	case recorder.OpenPage, recorder.ClosePage:
		panic(fmt.Sprintf("csharp: %s has no call mapping", action.Kind()))
	case recorder.Click:
		method := "Click"
		if a.ClickCount == 2 {
			method = "DblClick"
		}
		opts := map[string]any{}
		if a.Button != "" && a.Button != "left" {
			opts["button"] = a.Button
		}
		if len(a.Modifiers) > 0 {
			opts["modifiers"] = []string(a.Modifiers)
		}
		if a.ClickCount > 2 {
			opts["clickCount"] = a.ClickCount
		}
		if a.Position != nil {
			opts["position"] = map[string]any{"x": a.Position.X, "y": a.Position.Y}
		}
		if len(opts) == 0 {
			return locatorCall(subject, a.Selector, method, "")
		}
		return locatorCall(subject, a.Selector, method, literal.Constructor(opts, literal.DefaultIndent, "Locator"+method+"Options"))
	case recorder.Check:
		return locatorCall(subject, a.Selector, "Check", "")
	case recorder.Uncheck:
		return locatorCall(subject, a.Selector, "Uncheck", "")
	case recorder.Fill:
		return locatorCall(subject, a.Selector, "Fill", literal.Quote(a.Text))
	case recorder.SetInputFiles:
		return locatorCall(subject, a.Selector, "SetInputFiles", literal.Format(a.Files, literal.DefaultIndent, ""))
	case recorder.Press:
		shortcut := strings.Join(append(append([]string{}, a.Modifiers...), a.Key), "+")
		return locatorCall(subject, a.Selector, "Press", literal.Quote(shortcut))
	case recorder.Navigate:
		return fmt.Sprintf("await %s.GotoAsync(%s);", subject, literal.Quote(a.URL))
	case recorder.Select:
		if len(a.Options) == 1 {
			return locatorCall(subject, a.Selector, "SelectOption", literal.Quote(a.Options[0]))
		}
		return locatorCall(subject, a.Selector, "SelectOption", literal.Format(a.Options, literal.DefaultIndent, ""))
	}
	panic(fmt.Sprintf("csharp: no call mapping for action %T", action))
}

func locatorCall(subject, selector, method, args string) string {
	return fmt.Sprintf("await %s.%s.%sAsync(%s);", subject, locator.AsLocator(selector), method, args)
}
