package literal

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// enumRoles are the roles whose string values render as enum members
// rather than string literals.
var enumRoles = map[string]bool{
	"permissions":      true,
	"colorScheme":      true,
	"modifiers":        true,
	"button":           true,
	"recordHarContent": true,
	"recordHarMode":    true,
	"serviceWorkers":   true,
}

// typeNames maps a role to the C# type constructed or enumerated for it.
var typeNames = map[string]string{
	"viewport":         "ViewportSize",
	"proxy":            "ProxySettings",
	"permissions":      "ContextPermission",
	"modifiers":        "KeyboardModifier",
	"button":           "MouseButton",
	"recordHarMode":    "HarMode",
	"recordHarContent": "HarContentPolicy",
	"serviceWorkers":   "ServiceWorkerPolicy",
}

// propertyNames maps an option key to its C# property name.
var propertyNames = map[string]string{
	"storageState": "StorageStatePath",
	"viewport":     "ViewportSize",
}

// IsEnumRole reports whether strings under role render as enum members.
func IsEnumRole(role string) bool {
	return enumRoles[role]
}

// TypeName returns the C# type name used for values under role.
func TypeName(role string) string {
	if name, ok := typeNames[role]; ok {
		return name
	}
	return Pascal(role)
}

// PropertyName returns the C# property name for an option key.
func PropertyName(key string) string {
	if name, ok := propertyNames[key]; ok {
		return name
	}
	return Pascal(key)
}

// Pascal upper-cases the first letter of every segment separated by '-', '_'
// or a space and joins the segments: "clipboard-read" becomes "ClipboardRead",
// "deviceScaleFactor" becomes "DeviceScaleFactor".
func Pascal(s string) string {
	segments := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	var sb strings.Builder
	for _, seg := range segments {
		r, size := utf8.DecodeRuneInString(seg)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(seg[size:])
	}
	return sb.String()
}
