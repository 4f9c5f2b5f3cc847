package msdocs

import "strings"

// Record is one documented API symbol ready for storage.
// Records are immutable once created by a parser.
type Record struct {
	// Name is the canonical, case-sensitive symbol identifier.
	Name string

	// Content is the normalized markdown documentation.
	Content string
}

// NameRule disqualifies symbol names containing a marker substring.
type NameRule struct {
	Substring string
	Reason    string
}

// NameRules lists substrings that disqualify a symbol name. Names carrying
// any of these belong to overload, operator, or scoped entries, which the
// store intentionally excludes.
var NameRules = []NameRule{
	{Substring: "+", Reason: "operator entry"},
	{Substring: "=", Reason: "operator entry"},
	{Substring: "()", Reason: "overload entry"},
	{Substring: "!", Reason: "operator entry"},
	{Substring: "::", Reason: "scoped entry"},
}

// Validate returns an error if the record cannot be stored.
func (r *Record) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "record name required")
	}
	for _, rule := range NameRules {
		if strings.Contains(r.Name, rule.Substring) {
			return Errorf(EINVALID, "invalid function name %q: contains %q (%s)", r.Name, rule.Substring, rule.Reason)
		}
	}
	return nil
}

// RecordParser extracts a Record from one documentation source file.
type RecordParser interface {
	// ParseFile reads and parses the file at path.
	// Returns EINVALID if the symbol name cannot be determined or is invalid.
	ParseFile(path string) (*Record, error)
}
