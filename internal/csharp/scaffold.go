package csharp

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/v0xg/csharpgen/internal/codebuf"
	"github.com/v0xg/csharpgen/internal/devices"
	"github.com/v0xg/csharpgen/internal/literal"
	"github.com/v0xg/csharpgen/internal/options"
)

// GenerateHeader renders everything that precedes the first action: usings,
// the program or test class, browser launch and context creation.
func (g *Generator) GenerateHeader(opts options.Generator) (string, error) {
	opts = opts.WithDefaults()
	if g.testRunner() {
		return g.testRunnerHeader(opts)
	}
	return g.standaloneHeader(opts)
}

func (g *Generator) standaloneHeader(opts options.Generator) (string, error) {
	launch, err := opts.Launch.Literal()
	if err != nil {
		return "", errors.Wrap(err, "launch options")
	}
	contextOptions, err := formatContextOptions(opts, "playwright")
	if err != nil {
		return "", err
	}

	buf := codebuf.New(0)
	buf.Add(`using Microsoft.Playwright;
		using System;
		using System.Threading.Tasks;

		class Program
		{
		    public static async Task Main()
		    {
		        using var playwright = await Playwright.CreateAsync();`)
	launchArgs := ""
	if len(launch) > 0 {
		launchArgs = literal.Constructor(launch, literal.DefaultIndent, "BrowserTypeLaunchOptions")
	}
	buf.Add(fmt.Sprintf("await using var browser = await playwright.%s.LaunchAsync(%s);", literal.Pascal(opts.BrowserName), launchArgs))
	buf.Add(fmt.Sprintf("var context = await browser.NewContextAsync(%s);", contextOptions))
	buf.NewLine()
	return buf.String(), nil
}

func (g *Generator) testRunnerHeader(opts options.Generator) (string, error) {
	contextOptions, err := formatContextOptions(opts, "Playwright")
	if err != nil {
		return "", err
	}

	buf := codebuf.New(0)
	if g.mode == ModeNUnit {
		buf.Add("using Microsoft.Playwright.NUnit;\nusing Microsoft.Playwright;")
		buf.NewLine()
		buf.Add("[Parallelizable(ParallelScope.Self)]\n[TestFixture]")
	} else {
		buf.Add("using Microsoft.Playwright.MSTest;\nusing Microsoft.Playwright;")
		buf.NewLine()
		buf.Add("[TestClass]")
	}
	buf.Add("public class Tests : PageTest\n{")
	if contextOptions != "" {
		buf.Add(fmt.Sprintf(`public override BrowserNewContextOptions ContextOptions()
			{
			    return %s;
			}`, contextOptions))
		buf.NewLine()
	}
	if g.mode == ModeNUnit {
		buf.Add("[Test]")
	} else {
		buf.Add("[TestMethod]")
	}
	buf.Add("public async Task MyTest()\n{")
	return buf.String(), nil
}

// GenerateFooter closes the method and class, saving the storage state to
// saveStorage first when it is set.
func (g *Generator) GenerateFooter(saveStorage string) string {
	var sb strings.Builder
	if saveStorage != "" {
		context := "context"
		if g.testRunner() {
			context = "Context"
		}
		storage := literal.Constructor(map[string]any{"path": saveStorage}, literal.DefaultIndent, "BrowserContextStorageStateOptions")
		buf := codebuf.New(actionOffset)
		buf.Add(fmt.Sprintf("await %s.StorageStateAsync(%s);", context, storage))
		sb.WriteString("\n" + buf.String() + "\n")
	}
	sb.WriteString("    }\n}\n")
	return sb.String()
}

// formatContextOptions renders the argument of NewContextAsync. A known
// device seeds the options; fields equal to the device preset are dropped
// first. It returns "" when there is nothing to pass.
func formatContextOptions(opts options.Generator, playwright string) (string, error) {
	contextOptions := opts.Context
	preset, known := devices.Lookup(opts.DeviceName)
	if known {
		contextOptions = devices.Sanitize(preset, contextOptions)
	}
	lit, err := contextOptions.Literal()
	if err != nil {
		return "", errors.Wrap(err, "context options")
	}

	if !known {
		if len(lit) == 0 {
			return "", nil
		}
		return literal.Constructor(lit, literal.DefaultIndent, "BrowserNewContextOptions"), nil
	}
	device := fmt.Sprintf("%s.Devices[%s]", playwright, literal.Quote(opts.DeviceName))
	if len(lit) == 0 {
		return device, nil
	}
	return literal.Constructor(lit, literal.DefaultIndent, "BrowserNewContextOptions("+device+")"), nil
}
