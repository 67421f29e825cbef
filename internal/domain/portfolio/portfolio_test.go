package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinSplitTechRoundTrip(t *testing.T) {
	tags := []string{"Go", "Rust"}
	joined := JoinTech(tags)
	assert.Equal(t, "Go, Rust", joined)
	assert.Equal(t, tags, SplitTech(joined))
}

func TestSplitTechTrimsAndDropsEmpties(t *testing.T) {
	assert.Equal(t, []string{"Next.js", "Tailwind"}, SplitTech("  Next.js ,Tailwind, "))
	assert.Equal(t, []string{}, SplitTech(""))
	assert.Equal(t, []string{}, SplitTech(" , ,"))
}

func TestSubmittedIDsIgnoresPendingInserts(t *testing.T) {
	tools := []Tool{
		{ID: 1, Name: "Git"},
		{Name: "Docker"}, // no id yet
		{ID: 7, Name: "Figma"},
	}
	ids := SubmittedIDs(tools)
	assert.Equal(t, map[int64]bool{1: true, 7: true}, ids)
}

func TestIDsToDelete(t *testing.T) {
	existing := []int64{1, 2, 3}

	doomed := IDsToDelete(existing, map[int64]bool{1: true, 3: true})
	assert.Equal(t, []int64{2}, doomed)

	// Empty submission deletes everything existing.
	doomed = IDsToDelete(existing, SubmittedIDs([]Project{}))
	assert.Equal(t, []int64{1, 2, 3}, doomed)

	// Full submission deletes nothing.
	assert.Empty(t, IDsToDelete(existing, map[int64]bool{1: true, 2: true, 3: true}))
}

func TestNormalizeFillsEmptySlices(t *testing.T) {
	doc := &Document{Projects: []Project{{Title: "Portfolio"}}}
	doc.Normalize()
	assert.NotNil(t, doc.Tools)
	assert.Len(t, doc.Tools, 0)
	assert.NotNil(t, doc.Projects[0].Tech)
}
