package ai

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/v0xg/csharpgen/internal/crawler"
	"github.com/v0xg/csharpgen/internal/recorder"
)

const systemPrompt = `You write recorded browser sessions for a Playwright code generator. Convert the user's request into the list of actions a person would perform in the browser.

Output a JSON array. Each item is {"frame": {...}, "action": {...}}.

frame:
- "pageAlias": variable of the page the action runs in. The first page is "page"; pages opened by a popup use the alias given in that popup signal ("page1", "page2", ...)
- "isMainFrame": true unless the action targets an iframe
- "selectorsChain": for iframes, the CSS selectors of the nested iframe elements, outermost first

action ("name" selects the kind):
- {"name": "navigate", "url": "..."}
- {"name": "click", "selector": "...", "button": "left"|"right"|"middle", "clickCount": 1, "modifiers": ["Shift"]}
- {"name": "fill", "selector": "...", "text": "..."}
- {"name": "press", "selector": "...", "key": "Enter", "modifiers": ["Control"]}
- {"name": "check" | "uncheck", "selector": "..."}
- {"name": "select", "selector": "...", "options": ["value"]}
- {"name": "setInputFiles", "selector": "...", "files": ["path"]}
- {"name": "closePage"}

Any action may carry "signals", side effects it is expected to cause:
- {"name": "popup", "popupAlias": "page1"} a new page opens
- {"name": "download", "downloadAlias": "1"} a file downloads
- {"name": "dialog", "dialogAlias": "1"} an alert or confirm appears
- {"name": "navigation", "url": "..."} the page navigates to url

Selectors:
- Prefer selectors from the page map when one is given; copy them verbatim
- Otherwise use internal:role=button[name="Save"i], internal:label="Email"i, internal:attr=[placeholder="Search"i], internal:text="Sign in"i or plain CSS

Do not emit openPage, and do not navigate to the start URL; both are added for you.
Respond ONLY with the JSON array, no explanation or markdown.`

// Request is what the planner is asked to turn into actions.
type Request struct {
	URL    string
	Prompt string
	// Page, when set, lists the elements available on the start page.
	Page *crawler.PageMap
}

func buildUserPrompt(req Request) (string, error) {
	var sb strings.Builder
	sb.WriteString("Start URL: " + req.URL + "\n\n")
	if req.Page != nil {
		pageMap, err := json.MarshalIndent(req.Page, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "marshal page map")
		}
		sb.WriteString("Page map:\n" + string(pageMap) + "\n\n")
	}
	sb.WriteString("User request: " + req.Prompt)
	return sb.String(), nil
}

// parseActions extracts the JSON array from a response that may surround it
// with prose or code fences.
func parseActions(response string) ([]recorder.ActionInContext, error) {
	if actions, err := recorder.DecodeActions([]byte(response)); err == nil {
		return actions, nil
	}

	start := strings.Index(response, "[")
	if start == -1 {
		return nil, errors.New("no JSON array found in response")
	}
	end := -1
	depth, inString := 0, false
	for i := start; i < len(response) && end == -1; i++ {
		switch c := response[i]; {
		case inString && c == '\\':
			i++
		case c == '"':
			inString = !inString
		case inString:
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth == 0 {
				end = i + 1
			}
		}
	}
	if end == -1 {
		return nil, errors.New("no matching closing bracket found")
	}
	return recorder.DecodeActions([]byte(response[start:end]))
}

// withStart prefixes the planned actions with opening the first page and
// navigating it to url, and fills in frames the model left blank.
func withStart(url string, planned []recorder.ActionInContext) []recorder.ActionInContext {
	main := recorder.FrameContext{PageAlias: "page", IsMainFrame: true}
	out := []recorder.ActionInContext{
		{Frame: main, Action: recorder.OpenPage{URL: "about:blank"}},
		{Frame: main, Action: recorder.Navigate{URL: url}},
	}
	for _, a := range planned {
		if _, open := a.Action.(recorder.OpenPage); open {
			continue
		}
		if a.Frame.PageAlias == "" {
			a.Frame.PageAlias = "page"
		}
		if !a.Frame.IsMainFrame && len(a.Frame.SelectorsChain) == 0 && a.Frame.Name == "" && a.Frame.URL == "" {
			a.Frame.IsMainFrame = true
		}
		out = append(out, a)
	}
	return out
}
