package msdocs

// Matcher finds the stored names most similar to a query name.
type Matcher interface {
	// CloseMatches returns the candidates closest to name, best first.
	// Empty when nothing clears the similarity cutoff.
	CloseMatches(name string, candidates []string) []string
}

// PickCanceled is the index returned by a Picker when selection is canceled.
const PickCanceled = -1

// Picker presents a modal single choice among candidate names.
// Implementations hide how the choice is presented (terminal prompt, UI
// widget, test stub).
type Picker interface {
	// Pick returns the index of the chosen option, or PickCanceled.
	Pick(options []string) (int, error)
}

// Resolver maps a possibly-imprecise symbol name to a stored key.
type Resolver struct {
	keys    []string
	keySet  map[string]struct{}
	matcher Matcher
	picker  Picker
}

// NewResolver creates a Resolver over the given key set.
func NewResolver(keys []string, matcher Matcher, picker Picker) *Resolver {
	keySet := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		keySet[key] = struct{}{}
	}
	return &Resolver{
		keys:    keys,
		keySet:  keySet,
		matcher: matcher,
		picker:  picker,
	}
}

// Resolve returns the stored key best matching query. An exact hit returns
// immediately without fuzzy matching. A single fuzzy match resolves silently.
// Multiple fuzzy matches go through the Picker; cancellation yields the same
// ENOTFOUND outcome as no match at all.
func (r *Resolver) Resolve(query string) (string, error) {
	if _, ok := r.keySet[query]; ok {
		return query, nil
	}

	matches := r.matcher.CloseMatches(query, r.keys)
	switch len(matches) {
	case 0:
		return "", Errorf(ENOTFOUND, "no description for %q", query)
	case 1:
		return matches[0], nil
	}

	index, err := r.picker.Pick(matches)
	if err != nil {
		return "", err
	}
	if index == PickCanceled || index < 0 || index >= len(matches) {
		return "", Errorf(ENOTFOUND, "selection canceled for %q", query)
	}
	return matches[index], nil
}
