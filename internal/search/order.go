package search

import (
	"sort"

	fsutil "github.com/YummyOreo/onyx/internal/fs"
	"github.com/sahilm/fuzzy"
)

type FileEntry = fsutil.Entry

// Ranked is an entry placed in display order.
type Ranked struct {
	Entry FileEntry
	// Index is the entry's position in the listing it was ordered from.
	Index int
	Score int
	// Matched holds byte offsets into Entry.Name of the characters that
	// matched the query. Nil when no query is active.
	Matched []int
}

// Orderer turns a directory listing into display order.
type Orderer interface {
	Order(entries []FileEntry) []Ranked
}

// DefaultOrder keeps entries in the order the reader returned them.
type DefaultOrder struct{}

func (DefaultOrder) Order(entries []FileEntry) []Ranked {
	ranked := make([]Ranked, len(entries))
	for i, e := range entries {
		ranked[i] = Ranked{Entry: e, Index: i}
	}
	return ranked
}

// FuzzyOrder keeps only entries whose name contains the query as a
// subsequence, best score first. Equal scores keep listing order.
type FuzzyOrder struct {
	Pattern string
}

func (f FuzzyOrder) Order(entries []FileEntry) []Ranked {
	if f.Pattern == "" {
		return DefaultOrder{}.Order(entries)
	}

	matches := fuzzy.FindFrom(f.Pattern, entryNames(entries))
	ranked := make([]Ranked, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, Ranked{
			Entry:   entries[m.Index],
			Index:   m.Index,
			Score:   m.Score,
			Matched: m.MatchedIndexes,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Index < ranked[j].Index
	})
	return ranked
}

// Order applies o to entries; a nil Orderer means DefaultOrder.
func Order(entries []FileEntry, o Orderer) []Ranked {
	if o == nil {
		o = DefaultOrder{}
	}
	return o.Order(entries)
}

type entryNames []FileEntry

func (n entryNames) String(i int) string { return n[i].Name }
func (n entryNames) Len() int            { return len(n) }
