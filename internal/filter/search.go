// SPDX-License-Identifier: GPL-3.0-or-later
// Copyright (C) 2026 Anthony Green <green@redhat.com>

package filter

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MobileOptionLimit is how many options a mobile editor shows before the
// "more options" affordance.
const MobileOptionLimit = 6

var (
	_ Choice      = (*SelectField[int])(nil)
	_ MultiChoice = (*MultiSelectField[int])(nil)
	_ TextInput   = (*TextField)(nil)
)

// Fold lowercases s and strips combining marks, so "Ševčík" folds to "sevcik".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Matches reports whether label contains query, ignoring case and diacritics.
// An empty query matches everything.
func Matches(label, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	return strings.Contains(Fold(label), Fold(q))
}

// FilterOptions returns the indexes of the labels matching query.
func FilterOptions(labels []string, query string) []int {
	out := make([]int, 0, len(labels))
	for i, l := range labels {
		if Matches(l, query) {
			out = append(out, i)
		}
	}
	return out
}

// BestMatch returns the position within visible (indexes into labels) of the
// best fuzzy match for query, or 0 when nothing ranks.
func BestMatch(labels []string, visible []int, query string) int {
	q := Fold(strings.TrimSpace(query))
	if q == "" || len(visible) == 0 {
		return 0
	}
	targets := make([]string, len(visible))
	for i, idx := range visible {
		targets[i] = Fold(labels[idx])
	}
	ranks := fuzzy.RankFindNormalizedFold(q, targets)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance || (r.Distance == best.Distance && r.OriginalIndex < best.OriginalIndex) {
			best = r
		}
	}
	return best.OriginalIndex
}

// MobileOptions returns the option indexes a mobile editor lists and how many
// are held back. Until expanded only the first MobileOptionLimit show and
// the query is ignored.
func MobileOptions(labels []string, expanded bool, query string) ([]int, int) {
	if expanded || len(labels) <= MobileOptionLimit {
		return FilterOptions(labels, query), 0
	}
	out := make([]int, MobileOptionLimit)
	for i := range out {
		out[i] = i
	}
	return out, len(labels) - MobileOptionLimit
}
