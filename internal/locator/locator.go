// Package locator turns recorder selectors into C# locator expressions.
package locator

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/v0xg/csharpgen/internal/literal"
)

const chainSeparator = " >> "

// AsLocator renders selector as a chain of locator calls, without the leading
// receiver: `Locator("#submit")`, `GetByRole(AriaRole.Button, new() { Name = "Save" })`.
func AsLocator(selector string) string {
	parts := splitChain(selector)
	calls := make([]string, 0, len(parts))
	for _, part := range parts {
		calls = append(calls, partToCall(part))
	}
	return strings.Join(calls, ".")
}

func partToCall(part string) string {
	switch {
	case strings.HasPrefix(part, "internal:role="):
		return roleCall(strings.TrimPrefix(part, "internal:role="))
	case strings.HasPrefix(part, "internal:text="):
		return textCall("GetByText", strings.TrimPrefix(part, "internal:text="))
	case strings.HasPrefix(part, "internal:label="):
		return textCall("GetByLabel", strings.TrimPrefix(part, "internal:label="))
	case strings.HasPrefix(part, "internal:testid="):
		if _, value, ok := attribute(strings.TrimPrefix(part, "internal:testid=")); ok {
			text, _ := parseText(value)
			return "GetByTestId(" + text + ")"
		}
	case strings.HasPrefix(part, "internal:attr="):
		if name, value, ok := attribute(strings.TrimPrefix(part, "internal:attr=")); ok {
			switch name {
			case "placeholder":
				return textCall("GetByPlaceholder", value)
			case "alt":
				return textCall("GetByAltText", value)
			case "title":
				return textCall("GetByTitle", value)
			}
		}
	case strings.HasPrefix(part, "nth="):
		n, err := strconv.Atoi(strings.TrimPrefix(part, "nth="))
		if err != nil {
			break
		}
		switch n {
		case 0:
			return "First"
		case -1:
			return "Last"
		}
		return "Nth(" + strconv.Itoa(n) + ")"
	}
	return "Locator(" + literal.Quote(part) + ")"
}

func roleCall(body string) string {
	role := body
	var opts []string
	if i := strings.IndexByte(body, '['); i >= 0 {
		role = body[:i]
		for _, attr := range splitAttributes(body[i:]) {
			name, value, ok := attribute(attr)
			if !ok || name != "name" {
				continue
			}
			text, exact := parseText(value)
			opts = append(opts, "Name = "+text)
			if exact {
				opts = append(opts, "Exact = true")
			}
		}
	}
	call := "GetByRole(AriaRole." + literal.Pascal(role)
	if len(opts) > 0 {
		call += ", new() { " + strings.Join(opts, ", ") + " }"
	}
	return call + ")"
}

func textCall(method, value string) string {
	text, exact := parseText(value)
	if exact {
		return method + "(" + text + ", new() { Exact = true })"
	}
	return method + "(" + text + ")"
}

// parseText renders a selector text value: "quoted"i, "quoted"s, /regex/flags
// or a bare string. exact reports a case-sensitive full match.
func parseText(value string) (text string, exact bool) {
	if strings.HasPrefix(value, `"`) {
		end := strings.LastIndexByte(value, '"')
		var s string
		if end > 0 && json.Unmarshal([]byte(value[:end+1]), &s) == nil {
			return literal.Quote(s), value[end+1:] == "s"
		}
	}
	if strings.HasPrefix(value, "/") {
		if end := strings.LastIndexByte(value, '/'); end > 0 {
			pattern, flags := value[1:end], value[end+1:]
			if strings.Contains(flags, "i") {
				return "new Regex(" + literal.Quote(pattern) + ", RegexOptions.IgnoreCase)", false
			}
			return "new Regex(" + literal.Quote(pattern) + ")", false
		}
	}
	return literal.Quote(value), false
}

// attribute parses `[name=value]` into its name and raw value.
func attribute(s string) (name, value string, ok bool) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return "", "", false
	}
	name, value, ok = strings.Cut(s[1:len(s)-1], "=")
	return name, value, ok
}

// splitAttributes splits `[a="x"][b=y]` into `[a="x"]` and `[b=y]`.
func splitAttributes(s string) []string {
	var out []string
	start, inQuote := 0, false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			inQuote = !inQuote
		case ']':
			if !inQuote {
				out = append(out, s[start:i+1])
				start = i + 1
			}
		}
	}
	return out
}

// splitChain splits a selector on " >> " outside double quotes.
func splitChain(selector string) []string {
	var parts []string
	start, inQuote := 0, false
	for i := 0; i < len(selector); i++ {
		switch selector[i] {
		case '\\':
			i++
		case '"':
			inQuote = !inQuote
		default:
			if !inQuote && strings.HasPrefix(selector[i:], chainSeparator) {
				parts = append(parts, selector[start:i])
				i += len(chainSeparator) - 1
				start = i + 1
			}
		}
	}
	return append(parts, selector[start:])
}
