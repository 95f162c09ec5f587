package ui

import "github.com/charmbracelet/lipgloss"

// Blueprint color palette
var (
	ColorBright       = lipgloss.Color("#D6E8FF")
	ColorLink         = lipgloss.Color("#BECDFF")
	ColorBase         = lipgloss.Color("#7D9BFF")
	ColorMid          = lipgloss.Color("#7884FF")
	ColorDim          = lipgloss.Color("#4656B4")
	ColorDeep         = lipgloss.Color("#141C46")
	ColorBorderBright = lipgloss.Color("#9BB4FF")
	ColorBorderNorm   = lipgloss.Color("#4858F0")
	ColorError        = lipgloss.Color("#FF5A5A")
	ColorWarning      = lipgloss.Color("#FFC850")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorDeep).
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorLink)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorDeep).
			Foreground(ColorLink).
			Padding(0, 1)

	StyleStatusRunning = lipgloss.NewStyle().
				Foreground(ColorBright).
				Bold(true)

	StyleStatusPaused = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleStatusError = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderBright)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true).
			Padding(0, 1)

	StyleArmName = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleArmCoord = lipgloss.NewStyle().
			Foreground(ColorMid)

	StyleArmAngle = lipgloss.NewStyle().
			Foreground(ColorBase)

	StyleClampMarker = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleRule = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleLegend = lipgloss.NewStyle().
			Foreground(ColorMid)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleToggleOn = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleToggleOff = lipgloss.NewStyle().
			Foreground(ColorDim)

	StyleChart = lipgloss.NewStyle().
			Foreground(ColorLink)
)
