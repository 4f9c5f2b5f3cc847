package mock

import "github.com/fwojciec/msdocs"

var _ msdocs.Matcher = (*Matcher)(nil)

// Matcher is a mock implementation of msdocs.Matcher.
type Matcher struct {
	CloseMatchesFn func(name string, candidates []string) []string
}

func (m *Matcher) CloseMatches(name string, candidates []string) []string {
	return m.CloseMatchesFn(name, candidates)
}

var _ msdocs.Picker = (*Picker)(nil)

// Picker is a mock implementation of msdocs.Picker.
type Picker struct {
	PickFn func(options []string) (int, error)
}

func (p *Picker) Pick(options []string) (int, error) {
	return p.PickFn(options)
}
