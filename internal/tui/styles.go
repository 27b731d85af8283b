package tui

import "github.com/charmbracelet/lipgloss"

var (
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	successDotStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	heroAccentColor        = lipgloss.Color("#4f7cff")
	heroInkColor           = lipgloss.Color("#0b1533")
	heroTextColor          = lipgloss.Color("#eef2ff")
	heroSecondaryTextColor = lipgloss.Color("#9db4ff")

	heroTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor)
	taglineStyle       = lipgloss.NewStyle().Foreground(heroSecondaryTextColor).Italic(true)
	activeTabStyle     = lipgloss.NewStyle().Bold(true).Foreground(heroTextColor).Background(heroAccentColor).Padding(0, 2)
	inactiveTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8fa8")).Padding(0, 2)
	buttonStyle        = lipgloss.NewStyle().Bold(true).Foreground(heroTextColor).Background(heroAccentColor).Padding(0, 2)
	buttonDisabled     = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0c4d6")).Background(lipgloss.Color("#56526e")).Padding(0, 2)
	resultBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(heroAccentColor).Padding(0, 1)
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle           = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	legendBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(heroTextColor).Background(heroInkColor)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#050a1a"))
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)
	logoArtLines       = []string{
		"███████╗ ████████╗ ██╗   ██╗ ██████╗  ██╗   ██╗ ██████╗   █████╗  ██╗     ",
		"██╔════╝ ╚══██╔══╝ ██║   ██║ ██╔══██╗ ╚██╗ ██╔╝ ██╔══██╗ ██╔══██╗ ██║     ",
		"███████╗    ██║    ██║   ██║ ██║  ██║  ╚████╔╝  ██████╔╝ ███████║ ██║     ",
		"╚════██║    ██║    ██║   ██║ ██║  ██║   ╚██╔╝   ██╔═══╝  ██╔══██║ ██║     ",
		"███████║    ██║    ╚██████╔╝ ██████╔╝    ██║    ██║      ██║  ██║ ███████╗",
		"╚══════╝    ╚═╝     ╚═════╝  ╚═════╝     ╚═╝    ╚═╝      ╚═╝  ╚═╝ ╚══════╝",
	}
)
