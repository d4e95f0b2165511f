package board

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/classboard/pkg/roster"
)

func TestViewRendersRankedCardsInOrder(t *testing.T) {
	m := loadedModel(t, &stubFetcher{records: testRecords()}, "10-A", "10-B")

	out := m.View()

	aliceAt := strings.Index(out, "Alice")
	caraAt := strings.Index(out, "Cara")
	bobAt := strings.Index(out, "bob")
	assert.True(t, aliceAt >= 0 && caraAt >= 0 && bobAt >= 0, "all students rendered")
	assert.Less(t, aliceAt, caraAt)
	assert.Less(t, caraAt, bobAt)
}

func TestViewShowsTrophyForPodiumAndNumericBadgeBelow(t *testing.T) {
	records := append(testRecords(), testStudent("Dan", 40, "10-A"))
	fetcher := &stubFetcher{records: records}
	m := loadedModel(t, fetcher, "10-A")

	out := m.View()

	assert.Contains(t, out, DefaultBoardTheme().Icons.Trophy)
	assert.Contains(t, out, "#4")
	assert.NotContains(t, out, "#1", "podium ranks use the trophy, not a numeric badge")
}

func TestViewFormatsPercentageToOneDecimal(t *testing.T) {
	m := loadedModel(t, &stubFetcher{records: []roster.Student{
		testStudent("Alice", 92.25, "10-A"),
	}}, "10-A")

	assert.Contains(t, m.View(), "92.2%")
}

func TestViewShowsIdentityBlock(t *testing.T) {
	m := loadedModel(t, &stubFetcher{records: testRecords()}, "10-A")

	out := m.View()
	assert.Contains(t, out, "ADM-Alice")
	assert.Contains(t, out, "[10-A]")
}

func TestViewEmptyState(t *testing.T) {
	m := loadedModel(t, &stubFetcher{}, "10-A")

	out := m.View()
	assert.Contains(t, out, "No students match the current view")
}

func TestViewLoadingSuppressesCards(t *testing.T) {
	m := newTestModel(t, &stubFetcher{records: testRecords()}, "10-A")

	out := m.View()

	assert.Contains(t, out, "Loading students")
	assert.NotContains(t, out, "Alice")
}

func TestViewStatusBarShowsSortAndNotice(t *testing.T) {
	m := loadedModel(t, &stubFetcher{records: testRecords()}, "10-A")

	assert.Contains(t, m.View(), "Percentage ↓")

	m = press(t, m, "s")
	m = press(t, m, "d")
	assert.Contains(t, m.View(), "Name ↑")
}

func TestViewTitleIncludesTeacher(t *testing.T) {
	m := loadedModel(t, &stubFetcher{records: testRecords()}, "10-A")
	assert.Contains(t, m.View(), "T-42")
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	view := roster.BuildView(testRecords(), roster.FilterSet{}, roster.DefaultSort())

	RenderPlain(&buf, view)

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 4, "header plus one row per student")
	assert.Contains(t, lines[1], "Alice")
	assert.Contains(t, lines[1], "excellent")
	assert.Contains(t, lines[3], "bob")
	assert.Contains(t, lines[3], "fair")
}

func TestRenderPlainEmptyView(t *testing.T) {
	var buf bytes.Buffer
	RenderPlain(&buf, nil)
	assert.Contains(t, buf.String(), "No students found")
}
