// Package fuzzy implements the case-insensitive subsequence matcher used to
// rank palette commands, plus a helper to mark matched runes for rendering.
package fuzzy

import (
	"fmt"
	"strings"
	"unicode"
)

// Result reports whether a query matched a candidate and how well.
// Scores are only comparable within a single query.
type Result struct {
	Matched bool
	Score   int
}

// Match scores query against candidate as a subsequence. Each matched rune
// adds 1 plus the length of the run of consecutive matches before it, so
// uninterrupted runs outrank scattered hits. An empty query matches with
// score 0.
func Match(query, candidate string) Result {
	if query == "" {
		return Result{Matched: true}
	}

	q := lowerRunes(query)
	qi := 0
	score := 0
	run := 0
	for _, r := range candidate {
		if unicode.ToLower(r) == q[qi] {
			score += 1 + run
			run++
			qi++
			if qi == len(q) {
				return Result{Matched: true, Score: score}
			}
			continue
		}
		run = 0
	}
	return Result{Matched: qi == len(q), Score: score}
}

// MatchValue coerces candidate to a string before matching. String slices
// are joined with commas; nil becomes the empty string.
func MatchValue(query string, candidate any) Result {
	return Match(query, Stringify(candidate))
}

// Stringify converts an arbitrary value to the string form used for matching.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ",")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// Segment is a run of text that is either highlighted or not.
type Segment struct {
	Text      string
	Highlight bool
}

// Highlight splits text into segments, marking the runes that a greedy
// left-to-right walk of query consumes. Adjacent runes with the same flag
// are merged.
func Highlight(text, query string) []Segment {
	if query == "" {
		return []Segment{{Text: text}}
	}

	q := lowerRunes(query)
	qi := 0
	var segments []Segment
	var cur strings.Builder
	curHL := false
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		segments = append(segments, Segment{Text: cur.String(), Highlight: curHL})
		cur.Reset()
	}

	for _, r := range text {
		hl := qi < len(q) && unicode.ToLower(r) == q[qi]
		if hl {
			qi++
		}
		if hl != curHL {
			flush()
			curHL = hl
		}
		cur.WriteRune(r)
	}
	flush()
	if len(segments) == 0 {
		return []Segment{{Text: text}}
	}
	return segments
}

func lowerRunes(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, unicode.ToLower(r))
	}
	return out
}
