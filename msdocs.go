// Package msdocs provides an offline store of API symbol documentation built
// from Microsoft docs markdown source trees. An offline builder parses each
// source file, normalizes its markup, and persists name→compressed-text
// records; a resolver maps possibly-imprecise symbol names back to stored
// keys using exact lookup, fuzzy matching, or caller-mediated disambiguation.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, difflib/, zlib/).
package msdocs
