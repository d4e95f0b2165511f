package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/classboard/pkg/roster"
)

const nameColumnWidth = 24

var titleCaser = cases.Title(language.English)

func (m Model) View() string {
	title := m.renderTitle()

	if m.loading {
		// The spinner suppresses the rest of the tree while the
		// loader is in flight.
		return title + "\n\n  " + m.spinner.View() + " Loading students...\n"
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")

	if m.editing != fieldNone {
		bar := fmt.Sprintf("filter %s: %s", m.editing.label(), m.input.View())
		b.WriteString(m.theme.FilterBarStyle.Render(bar))
		b.WriteString("\n")
	}

	if len(m.view) == 0 {
		b.WriteString(m.theme.EmptyStyle.Render(m.theme.Icons.Empty + "  No students match the current view"))
		b.WriteString("\n")
	} else {
		for i, s := range m.view {
			b.WriteString(m.renderCard(i+1, s))
			b.WriteString("\n")
		}
	}

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderTitle() string {
	text := m.theme.TitleIcon + " " + m.theme.TitleText
	if m.teacherID != "" {
		text += " — " + m.teacherID
	}
	return m.theme.TitleStyle.Render(text)
}

// renderCard renders one ranked entry: rank badge, identity block, and
// a tier-colored percentage badge. Rank is derived from position, never
// stored.
func (m Model) renderCard(rank int, s roster.Student) string {
	tier := roster.RankTier(rank)
	badgeStyle := m.theme.RankBadgeStyle(tier)

	nameWidth := nameColumnWidth
	if m.width > 0 && m.width < 60 {
		nameWidth = m.width / 3
	}

	// Trophy for the podium, numeric badge for everyone else.
	var badge string
	if tier != roster.TierDefault {
		badge = badgeStyle.Render(m.theme.Icons.Trophy + " " + strconv.Itoa(rank))
	} else {
		badge = badgeStyle.Render(" #" + strconv.Itoa(rank))
	}
	badge = lipgloss.NewStyle().Width(6).Render(badge)

	name := runewidth.Truncate(s.Name, nameWidth, "…")
	name = runewidth.FillRight(name, nameWidth)

	pct := s.Percentage()
	perf := m.theme.PerformanceStyle(roster.PerformanceTier(pct)).
		Render(fmt.Sprintf("%5.1f%%", pct))

	return fmt.Sprintf("%s %s %s %s  %s",
		badge,
		m.theme.NameStyle.Render(name),
		m.theme.AdmissionStyle.Render(runewidth.FillRight(s.AdmissionNo, 10)),
		m.theme.TagStyle.Render("["+s.ClassSection+"]"),
		perf,
	)
}

func (m Model) renderStatusBar() string {
	parts := []string{
		"sort: " + sortLabel(m.sortCfg),
	}
	if summary := filterSummary(m.filters); summary != "" {
		parts = append(parts, "filters: "+summary)
	}
	if m.notice != "" {
		parts = append(parts, m.theme.NoticeStyle.Render(m.notice))
	}
	parts = append(parts, "s/d sort • c class • / \\ [ ] filter • x clear • r reload • q quit")
	return m.theme.StatusBarStyle.Render(strings.Join(parts, "  •  "))
}

func sortLabel(c roster.SortConfig) string {
	label := titleCaser.String(strings.ReplaceAll(string(c.Key), "_", " "))
	if c.Descending {
		return label + " ↓"
	}
	return label + " ↑"
}

func filterSummary(f roster.FilterSet) string {
	var parts []string
	if f.ClassSection != nil {
		parts = append(parts, *f.ClassSection)
	}
	if f.MinPercentage != nil {
		parts = append(parts, fmt.Sprintf("≥%g%%", *f.MinPercentage))
	}
	if f.MaxPercentage != nil {
		parts = append(parts, fmt.Sprintf("≤%g%%", *f.MaxPercentage))
	}
	if f.NamePrefix != nil {
		parts = append(parts, *f.NamePrefix+"*")
	}
	if f.NameSuffix != nil {
		parts = append(parts, "*"+*f.NameSuffix)
	}
	return strings.Join(parts, ", ")
}
