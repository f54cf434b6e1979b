package crawler

import (
	"encoding/json"
	"strings"
)

// PageMap is the interactive surface of a page as shown to the planner.
type PageMap struct {
	URL      string    `json:"url"`
	Title    string    `json:"title"`
	Elements []Element `json:"elements"`
	Frames   []Frame   `json:"frames,omitempty"`
}

// Element is one interactive element. Selector uses the recorder selector
// grammar, so planned actions can reference it verbatim.
type Element struct {
	Selector string `json:"selector"`
	Role     string `json:"role"`
	Name     string `json:"name,omitempty"`
}

// Frame is a child frame the planner may target through a selectors chain.
type Frame struct {
	Selector string `json:"selector"`
	Name     string `json:"name,omitempty"`
	URL      string `json:"url,omitempty"`
}

// rawElement is what the in-page script reports for an element.
type rawElement struct {
	Role        string
	Name        string
	Label       string
	Placeholder string
	TestID      string
	CSS         string
}

// roles whose accessible name identifies them well enough for GetByRole.
var namedRoles = map[string]bool{
	"button":   true,
	"link":     true,
	"checkbox": true,
	"radio":    true,
	"tab":      true,
	"menuitem": true,
	"combobox": true,
	"textbox":  true,
}

// selectorFor picks the most stable selector available for el: test id,
// role and name, label, placeholder, then CSS.
func selectorFor(el rawElement) string {
	switch {
	case el.TestID != "":
		return "internal:testid=[data-testid=" + quote(el.TestID) + "s]"
	case namedRoles[el.Role] && el.Name != "":
		return "internal:role=" + el.Role + "[name=" + quote(el.Name) + "i]"
	case el.Label != "":
		return "internal:label=" + quote(el.Label) + "i"
	case el.Placeholder != "":
		return "internal:attr=[placeholder=" + quote(el.Placeholder) + "i]"
	}
	return el.CSS
}

func quote(s string) string {
	data, _ := json.Marshal(strings.TrimSpace(s))
	return string(data)
}

// dedupe drops elements whose selector was already seen.
func dedupe(raw []rawElement) []Element {
	seen := map[string]bool{}
	var out []Element
	for _, r := range raw {
		selector := selectorFor(r)
		if selector == "" || seen[selector] {
			continue
		}
		seen[selector] = true
		out = append(out, Element{Selector: selector, Role: r.Role, Name: r.Name})
	}
	return out
}
