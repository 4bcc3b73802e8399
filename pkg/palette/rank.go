package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/oakwood-commons/folio/pkg/fuzzy"
)

// ErrUnknownField is returned by ParseFields for names that are not match fields.
var ErrUnknownField = errors.New("unknown match field")

// Match pairs a command with its best score for one query.
type Match struct {
	Command Command
	Score   int
	Matched bool
}

// Rank filters and orders cmds for query. A blank query returns cmds itself,
// untouched. Otherwise each command keeps the highest score of any matching
// field, non-matches are dropped, and the rest are stably sorted by score
// descending so ties keep registry order.
func Rank(cmds []Command, query string, fields ...Field) []Command {
	if strings.TrimSpace(query) == "" {
		return cmds
	}
	matches := rankMatches(cmds, query, fields)
	out := make([]Command, len(matches))
	for i, m := range matches {
		out[i] = m.Command
	}
	return out
}

// RankMatches is Rank with scores attached. A blank query yields every
// command with score 0 in registry order.
func RankMatches(cmds []Command, query string, fields ...Field) []Match {
	if strings.TrimSpace(query) == "" {
		out := make([]Match, len(cmds))
		for i, c := range cmds {
			out[i] = Match{Command: c, Matched: true}
		}
		return out
	}
	return rankMatches(cmds, query, fields)
}

func rankMatches(cmds []Command, query string, fields []Field) []Match {
	if len(fields) == 0 {
		fields = DefaultFields
	}
	out := make([]Match, 0, len(cmds))
	for _, c := range cmds {
		if m := scoreCommand(c, query, fields); m.Matched {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func scoreCommand(c Command, query string, fields []Field) Match {
	best := Match{Command: c, Score: -1}
	for _, f := range fields {
		v := c.Value(f)
		if v == "" {
			continue
		}
		r := fuzzy.Match(query, v)
		if !r.Matched {
			continue
		}
		best.Matched = true
		if r.Score > best.Score {
			best.Score = r.Score
		}
	}
	return best
}

// ParseFields converts field names (case-insensitive) into Fields.
// An empty input yields DefaultFields.
func ParseFields(names []string) ([]Field, error) {
	if len(names) == 0 {
		return append([]Field(nil), DefaultFields...), nil
	}
	out := make([]Field, 0, len(names))
	for _, n := range names {
		f := Field(strings.ToLower(strings.TrimSpace(n)))
		switch f {
		case FieldLabel, FieldDescription, FieldKeywords:
			out = append(out, f)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, n)
		}
	}
	return out, nil
}
