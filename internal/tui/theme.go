package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/HardenedIot/console/internal/model"
	"github.com/HardenedIot/console/internal/notify"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The console must remain readable on both light and dark terminal
// backgrounds, so colors are lipgloss.AdaptiveColor throughout and "faint"
// styling is applied only on dark backgrounds (faint text on light
// terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorAccent     lipgloss.TerminalColor = ac("27", "62") // blue
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	colorSuccess lipgloss.TerminalColor = ac("28", "40")  // green
	colorWarning lipgloss.TerminalColor = ac("130", "214") // amber
	colorError   lipgloss.TerminalColor = ac("160", "196") // red
	colorInfo    lipgloss.TerminalColor = ac("27", "75")  // blue
)

func lipglossRender(c lipgloss.TerminalColor, s string) string {
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleHeader() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true)
}

func styleFieldError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError)
}

// severityStyle picks the flash color for a notification severity.
func severityStyle(sev notify.Severity) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(true)
	switch sev {
	case notify.Success:
		return st.Foreground(colorSuccess)
	case notify.Warning:
		return st.Foreground(colorWarning)
	case notify.Error:
		return st.Foreground(colorError)
	default:
		return st.Foreground(colorInfo)
	}
}

// riskStyle mirrors the risk chip colors: low=green, medium=amber, high=red.
func riskStyle(r model.RiskLevel) lipgloss.Style {
	st := lipgloss.NewStyle()
	switch r {
	case model.RiskLow:
		return st.Foreground(colorSuccess)
	case model.RiskMedium:
		return st.Foreground(colorWarning)
	case model.RiskHigh:
		return st.Foreground(colorError)
	default:
		return st.Foreground(colorMuted)
	}
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which is useful
// for non-interactive output but can accidentally disable colors in a TUI.
// Here we only honor NO_COLOR and otherwise follow terminal capabilities.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust the env when it reports stronger support than the detector;
	// some terminals under-report on probing.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures background detection.
//
// Priority:
// 1) HIOT_TUI_THEME=light|dark
// 2) COLORFGBG heuristic (format like "15;0" = fg;bg)
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("HIOT_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
