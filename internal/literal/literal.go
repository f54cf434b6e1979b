// Package literal renders Go values as C# literal expressions for the
// Playwright .NET bindings.
//
// Supported values are nil, strings, booleans, numbers, slices and
// string-keyed maps. A role names the option a value belongs to and selects
// how it is spelled: enum members for a fixed set of roles, a constructed type
// for nested maps, and a decimal suffix for geolocation coordinates.
package literal

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// DefaultIndent is the indentation unit used inside object initializers.
const DefaultIndent = "    "

// Format renders value under role. Nested map entries are indented by indent.
//
// Map keys are sorted and nil entries are skipped, so the output does not
// depend on map iteration order.
func Format(value any, indent, role string) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		if IsEnumRole(role) {
			return TypeName(role) + "." + Pascal(v)
		}
		return Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case []any:
		return formatArray(v, indent, role)
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return formatArray(items, indent, role)
	case map[string]any:
		typeName := ""
		if role != "" {
			typeName = TypeName(role)
		}
		return formatObject(v, indent, typeName)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return "null"
		}
		return Format(rv.Elem().Interface(), indent, role)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number(strconv.FormatInt(rv.Int(), 10), role)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return number(strconv.FormatUint(rv.Uint(), 10), role)
	case reflect.Float32, reflect.Float64:
		return number(strconv.FormatFloat(rv.Float(), 'f', -1, 64), role)
	}
	return fmt.Sprint(value)
}

// Constructor renders m as an object initializer of typeExpr. typeExpr is
// written verbatim, which allows constructor arguments such as
// `BrowserNewContextOptions(playwright.Devices["Pixel 2"])`.
func Constructor(m map[string]any, indent, typeExpr string) string {
	return formatObject(m, indent, typeExpr)
}

// Quote returns text as a double-quoted C# string literal.
func Quote(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) + 2)
	sb.WriteByte('"')
	for _, r := range text {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f || r == '\u2028' || r == '\u2029' {
				fmt.Fprintf(&sb, `\u%04X`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func number(text, role string) string {
	if role == "latitude" || role == "longitude" {
		return text + "m"
	}
	return text
}

func formatArray(items []any, indent, role string) string {
	if len(items) == 0 {
		return "new[] { }"
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = Format(item, indent, role)
	}
	return "new[] { " + strings.Join(parts, ", ") + " }"
}

func formatObject(m map[string]any, indent, typeName string) string {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if absent(v) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) == 0 {
		if typeName != "" {
			return "new " + typeName + "()"
		}
		return ""
	}

	tokens := make([]string, len(keys))
	for i, key := range keys {
		value := Format(m[key], indent, key)
		value = strings.ReplaceAll(value, "\n", "\n"+indent)
		tokens[i] = PropertyName(key) + " = " + value + ","
	}
	body := "{\n" + indent + strings.Join(tokens, "\n"+indent) + "\n}"
	if typeName != "" {
		return "new " + typeName + "\n" + body
	}
	return body
}

func absent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
