package search

import "sort"

// MatchSpan represents the inclusive [Start, End] range of a match in byte offsets.
type MatchSpan struct {
	Start int
	End   int
}

// Spans groups the matched offsets of r into contiguous runs.
func (r Ranked) Spans() []MatchSpan {
	if len(r.Matched) == 0 {
		return nil
	}
	offsets := append([]int(nil), r.Matched...)
	sort.Ints(offsets)

	spans := make([]MatchSpan, 0, len(offsets))
	for _, off := range offsets {
		spans = append(spans, MatchSpan{Start: off, End: off})
	}
	return mergeMatchSpans(spans)
}

// mergeMatchSpans joins sorted spans that overlap or touch.
func mergeMatchSpans(spans []MatchSpan) []MatchSpan {
	if len(spans) == 0 {
		return nil
	}
	merged := make([]MatchSpan, 0, len(spans))
	current := spans[0]
	for i := 1; i < len(spans); i++ {
		next := spans[i]
		if next.Start <= current.End+1 {
			if next.End > current.End {
				current.End = next.End
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)
	return merged
}
