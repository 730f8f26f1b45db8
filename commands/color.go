package commands

import (
	"github.com/fatih/color"
	"github.com/josephlewis42/hsh/core/config"
)

var (
	ColorBoldGreen = []color.Attribute{color.FgGreen, color.Bold}
	ColorBoldRed   = []color.Attribute{color.FgRed, color.Bold}
)

// colorPrinter decides whether shell output is colorized.
type colorPrinter struct {
	enabled bool
}

func newColorPrinter(mode string, isTerminal bool) colorPrinter {
	switch mode {
	case config.ColorAlways:
		return colorPrinter{enabled: true}
	case config.ColorNever:
		return colorPrinter{enabled: false}
	default:
		return colorPrinter{enabled: isTerminal}
	}
}

// Sprint colors s with attrs if coloring is enabled.
func (c colorPrinter) Sprint(attrs []color.Attribute, s string) string {
	if !c.enabled {
		return s
	}

	clr := color.New(attrs...)
	// Override color.NoColor, the decision has already been made.
	clr.EnableColor()
	return clr.Sprint(s)
}
