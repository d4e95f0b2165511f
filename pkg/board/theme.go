package board

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/classboard/pkg/roster"
)

// BoardTheme holds all visual styling for the leaderboard TUI.
// Every field is yaml-overridable from the config file.
type BoardTheme struct {
	Colors BoardColors     `yaml:"colors"`
	Icons  BoardIcons      `yaml:"icons"`
	Title  BoardTitleStyle `yaml:"title"`
}

// BoardColors defines the color palette for the leaderboard.
type BoardColors struct {
	Primary string `yaml:"primary"` // title bar, accents
	Text    string `yaml:"text"`    // student names
	Muted   string `yaml:"muted"`   // admission numbers, help line
	Border  string `yaml:"border"`
	Error   string `yaml:"error"` // fetch-failure notice

	// Rank badge colors
	Gold      string `yaml:"gold"`
	Silver    string `yaml:"silver"`
	Bronze    string `yaml:"bronze"`
	RankOther string `yaml:"rank_other"` // "#N" badges for rank 4+

	// Performance badge colors
	Excellent string `yaml:"excellent"`
	Good      string `yaml:"good"`
	Fair      string `yaml:"fair"`
	Weak      string `yaml:"weak"`
	Poor      string `yaml:"poor"`
}

// BoardIcons defines the icons used in the leaderboard.
type BoardIcons struct {
	Trophy string `yaml:"trophy"` // ranks 1-3
	Empty  string `yaml:"empty"`  // empty-state marker
}

// BoardTitleStyle defines the title bar appearance.
type BoardTitleStyle struct {
	Text string `yaml:"text"`
	Icon string `yaml:"icon"`
}

// CompiledTheme holds pre-built lipgloss styles from a BoardTheme.
type CompiledTheme struct {
	TitleStyle     lipgloss.Style
	NameStyle      lipgloss.Style
	AdmissionStyle lipgloss.Style
	TagStyle       lipgloss.Style
	EmptyStyle     lipgloss.Style
	StatusBarStyle lipgloss.Style
	NoticeStyle    lipgloss.Style
	FilterBarStyle lipgloss.Style

	rankStyles map[string]lipgloss.Style
	perfStyles map[string]lipgloss.Style

	Icons     BoardIcons
	TitleText string
	TitleIcon string
}

// DefaultBoardTheme returns the default leaderboard theme.
func DefaultBoardTheme() *BoardTheme {
	return &BoardTheme{
		Colors: BoardColors{
			Primary:   "#7D56F4",
			Text:      "#CCCCCC",
			Muted:     "#626262",
			Border:    "#444444",
			Error:     "#FF5F56",
			Gold:      "#FFD700",
			Silver:    "#C0C0C0",
			Bronze:    "#CD7F32",
			RankOther: "#626262",
			Excellent: "#04B575",
			Good:      "#3C9DFF",
			Fair:      "#FFBD2E",
			Weak:      "#FF8C42",
			Poor:      "#FF5F56",
		},
		Icons: BoardIcons{
			Trophy: "\U0001F3C6", // 🏆
			Empty:  "∅",     // ∅
		},
		Title: BoardTitleStyle{
			Text: "Class Leaderboard",
			Icon: "\U0001F393", // 🎓
		},
	}
}

// Compile builds lipgloss styles from the theme configuration.
func (t *BoardTheme) Compile() *CompiledTheme {
	ct := &CompiledTheme{}

	primary := lipgloss.Color(t.Colors.Primary)
	muted := lipgloss.Color(t.Colors.Muted)

	ct.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(primary).
		Padding(0, 1)

	ct.NameStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Colors.Text))

	ct.AdmissionStyle = lipgloss.NewStyle().Foreground(muted)

	ct.TagStyle = lipgloss.NewStyle().Foreground(primary)

	ct.EmptyStyle = lipgloss.NewStyle().
		Foreground(muted).
		Italic(true).
		Padding(1, 2)

	ct.StatusBarStyle = lipgloss.NewStyle().
		Foreground(muted).
		MarginTop(1)

	ct.NoticeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Colors.Error)).
		Bold(true)

	ct.FilterBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Colors.Text)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Colors.Border)).
		Padding(0, 1)

	badge := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	}
	ct.rankStyles = map[string]lipgloss.Style{
		roster.TierGold:    badge(t.Colors.Gold),
		roster.TierSilver:  badge(t.Colors.Silver),
		roster.TierBronze:  badge(t.Colors.Bronze),
		roster.TierDefault: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.RankOther)),
	}
	ct.perfStyles = map[string]lipgloss.Style{
		roster.PerfExcellent: badge(t.Colors.Excellent),
		roster.PerfGood:      badge(t.Colors.Good),
		roster.PerfFair:      badge(t.Colors.Fair),
		roster.PerfWeak:      badge(t.Colors.Weak),
		roster.PerfPoor:      badge(t.Colors.Poor),
	}

	ct.Icons = t.Icons
	ct.TitleText = t.Title.Text
	ct.TitleIcon = t.Title.Icon

	return ct
}

// RankBadgeStyle returns the style for a rank badge tier.
func (ct *CompiledTheme) RankBadgeStyle(tier string) lipgloss.Style {
	if s, ok := ct.rankStyles[tier]; ok {
		return s
	}
	return ct.rankStyles[roster.TierDefault]
}

// PerformanceStyle returns the style for a performance tier.
func (ct *CompiledTheme) PerformanceStyle(tier string) lipgloss.Style {
	if s, ok := ct.perfStyles[tier]; ok {
		return s
	}
	return ct.perfStyles[roster.PerfPoor]
}
