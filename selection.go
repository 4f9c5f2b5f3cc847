package msdocs

import "strings"

// PrefixRule strips a well-known decoration from the start of raw selected
// text.
type PrefixRule struct {
	Prefix string
	Reason string
}

// SelectionPrefixes lists decorations a disassembly or decompiler view adds
// in front of a symbol name. Rules are tried in order and only the first
// matching prefix is stripped.
var SelectionPrefixes = []PrefixRule{
	{Prefix: "__imp_", Reason: "import thunk"},
	{Prefix: "cs:", Reason: "code segment"},
	{Prefix: "ds:", Reason: "data segment"},
	{Prefix: "j_", Reason: "jump thunk"},
}

// CleanSelection reduces raw highlighted text to a bare symbol name: one
// known prefix is stripped, and a call-expression selection is truncated at
// its first parenthesis.
func CleanSelection(raw string) string {
	name := raw
	for _, rule := range SelectionPrefixes {
		if strings.HasPrefix(name, rule.Prefix) {
			name = strings.TrimPrefix(name, rule.Prefix)
			break
		}
	}
	if pos := strings.Index(name, "("); pos != -1 {
		name = name[:pos]
	}
	return name
}
