// Package difflib resolves imprecise symbol names using sequence-similarity
// ratios from pmezard/go-difflib.
package difflib

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/fwojciec/msdocs"
)

// Compile-time interface verification.
var _ msdocs.Matcher = (*Matcher)(nil)

// Defaults match the behavior of a standard closest-matches utility: at most
// three candidates, each at least 60% similar.
const (
	DefaultN      = 3
	DefaultCutoff = 0.6
)

// Matcher finds the stored names closest to a query by sequence-similarity
// ratio. Matching is case-sensitive.
type Matcher struct {
	// N caps the number of candidates returned. Zero means DefaultN.
	N int

	// Cutoff is the minimum similarity ratio in [0, 1]. Zero means
	// DefaultCutoff.
	Cutoff float64
}

type scored struct {
	name  string
	ratio float64
}

// CloseMatches returns up to N candidates with similarity ratio >= Cutoff,
// best first. Ties break lexicographically so disambiguation lists have a
// stable order.
func (m *Matcher) CloseMatches(name string, candidates []string) []string {
	n := m.N
	if n <= 0 {
		n = DefaultN
	}
	cutoff := m.Cutoff
	if cutoff <= 0 {
		cutoff = DefaultCutoff
	}

	// Seq2 is fixed to the query so the matcher can reuse its index across
	// candidates; the cheap ratio upper bounds prune before the full ratio.
	sm := difflib.NewMatcher(nil, chars(name))
	var hits []scored
	for _, candidate := range candidates {
		sm.SetSeq1(chars(candidate))
		if sm.RealQuickRatio() < cutoff || sm.QuickRatio() < cutoff {
			continue
		}
		if ratio := sm.Ratio(); ratio >= cutoff {
			hits = append(hits, scored{name: candidate, ratio: ratio})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].ratio != hits[j].ratio {
			return hits[i].ratio > hits[j].ratio
		}
		return hits[i].name < hits[j].name
	})
	if len(hits) > n {
		hits = hits[:n]
	}

	matches := make([]string, len(hits))
	for i, hit := range hits {
		matches[i] = hit.name
	}
	return matches
}

// chars splits a string into the single-character sequence the matcher
// compares.
func chars(s string) []string {
	return strings.Split(s, "")
}
