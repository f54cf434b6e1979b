// Package csharp generates Playwright .NET programs and tests from recorded
// browser sessions.
package csharp

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/v0xg/csharpgen/internal/options"
	"github.com/v0xg/csharpgen/internal/recorder"
)

// Mode selects the shape of the generated file.
type Mode string

const (
	// ModeLibrary produces a standalone console program.
	ModeLibrary Mode = "library"
	// ModeMSTest produces an MSTest test class.
	ModeMSTest Mode = "mstest"
	// ModeNUnit produces an NUnit test fixture.
	ModeNUnit Mode = "nunit"
)

// Modes lists the supported modes.
func Modes() []Mode {
	return []Mode{ModeLibrary, ModeMSTest, ModeNUnit}
}

const (
	groupName   = ".NET C#"
	highlighter = "csharp"
	// actionOffset is the indentation of statements inside Main or the test method.
	actionOffset = 8
)

// Generator emits C# for one mode. It holds no mutable state and may be
// shared between goroutines.
type Generator struct {
	mode Mode
	id   string
	name string
}

// New returns the generator for mode.
func New(mode Mode) (*Generator, error) {
	switch mode {
	case ModeLibrary:
		return &Generator{mode: mode, id: "csharp", name: "Library"}, nil
	case ModeMSTest:
		return &Generator{mode: mode, id: "csharp-mstest", name: "MSTest"}, nil
	case ModeNUnit:
		return &Generator{mode: mode, id: "csharp-nunit", name: "NUnit"}, nil
	}
	return nil, errors.Errorf("unknown C# language mode: %q", mode)
}

func (g *Generator) Mode() Mode { return g.mode }

// ID identifies the generator to host applications, e.g. "csharp-nunit".
func (g *Generator) ID() string { return g.id }

// Name is the display name within the group.
func (g *Generator) Name() string { return g.name }

func (g *Generator) GroupName() string { return groupName }

// Highlighter is the syntax-highlighting hint for the output.
func (g *Generator) Highlighter() string { return highlighter }

func (g *Generator) testRunner() bool {
	return g.mode != ModeLibrary
}

// Generate renders a complete file: header, one block per action and footer,
// joined by newlines. Actions that produce no code are skipped.
func (g *Generator) Generate(opts options.Generator, actions []recorder.ActionInContext) (string, error) {
	header, err := g.GenerateHeader(opts)
	if err != nil {
		return "", err
	}
	parts := []string{header}
	for _, a := range actions {
		if text := g.GenerateAction(a); text != "" {
			parts = append(parts, text)
		}
	}
	parts = append(parts, g.GenerateFooter(opts.SaveStorage))
	return strings.Join(parts, "\n"), nil
}
