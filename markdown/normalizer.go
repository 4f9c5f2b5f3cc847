package markdown

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A pass is one rewrite stage of the normalizer. Order matters: later passes
// assume earlier ones already ran.
type pass struct {
	name string
	fn   func(string) string
}

var passes = []pass{
	{"strip-containers", stripContainerTags},
	{"collapse-spaces", collapseSpaces},
	{"tighten-spacing", tightenSpacing},
	{"dash-headings", rewriteDashHeadings},
	{"function-headings", rewriteFunctionHeadings},
	{"drop-see-also", dropSeeAlso},
	{"rewrite-links", rewriteLinks},
	{"tighten-tables", tightenTables},
	{"restyle-tables", restyleTables},
	{"h3-headings", rewriteH3},
}

// Normalize rewrites raw documentation markup into clean, display-ready
// markdown. It always returns a best-effort result and is deterministic for
// a given input.
func Normalize(raw string) string {
	text := raw
	for _, p := range passes {
		text = p.fn(text)
	}
	return text
}

// containerTagPattern matches opening, closing, and self-closing <a> and
// <div> tags.
var containerTagPattern = regexp.MustCompile(`</?(?:a|div)[^>]*>`)

func stripContainerTags(text string) string {
	return containerTagPattern.ReplaceAllString(text, "")
}

var spaceRunPattern = regexp.MustCompile(` +`)

func collapseSpaces(text string) string {
	return spaceRunPattern.ReplaceAllString(text, " ")
}

var (
	betweenTagsPattern = regexp.MustCompile(`>[\n\r]+<`)
	beforeTagPattern   = regexp.MustCompile(`[\n\r]+<`)
	blankRunPattern    = regexp.MustCompile(`[\n\r]{2,}`)
)

// tightenSpacing removes blank lines adjacent to tags and caps blank-line
// runs at a single blank line.
func tightenSpacing(text string) string {
	text = betweenTagsPattern.ReplaceAllString(text, "><")
	text = beforeTagPattern.ReplaceAllString(text, "<")
	text = blankRunPattern.ReplaceAllString(text, "\n\n")
	return strings.ReplaceAll(text, "\n ", " ")
}

// dashHeadingPattern matches source headings like "## -description".
var dashHeadingPattern = regexp.MustCompile(`# -(.+)`)

func rewriteDashHeadings(text string) string {
	return dashHeadingPattern.ReplaceAllStringFunc(text, func(match string) string {
		return "# " + capitalize(strings.TrimPrefix(match, "# -"))
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

var functionHeadingPattern = regexp.MustCompile(`# (\S+) function`)

func rewriteFunctionHeadings(text string) string {
	return functionHeadingPattern.ReplaceAllString(text, "# $1")
}

// seeAlsoPattern matches a "See also" link section up to, not including, the
// next heading.
var seeAlsoPattern = regexp.MustCompile(`## See-also[^#]+`)

func dropSeeAlso(text string) string {
	return seeAlsoPattern.ReplaceAllString(text, "")
}

var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)

// rewriteLinks turns markdown links into bold text. Content is rendered
// read-only and offline, so the URLs serve no purpose.
func rewriteLinks(text string) string {
	return linkPattern.ReplaceAllString(text, "**$1**")
}

// tightenTables collapses blank-line runs inside every <table> span. It
// scans tag by tag so blank-line handling elsewhere never touches table
// internals.
func tightenTables(text string) string {
	offset := 0
	for {
		start := strings.Index(text[offset:], "<table")
		if start == -1 {
			break
		}
		start += offset
		end := strings.Index(text[start:], "</table>")
		if end == -1 {
			break
		}
		end += start
		cleaned := strings.ReplaceAll(text[start:end], "\n\n", "\n")
		text = text[:start] + cleaned + text[end:]
		offset = start + len(cleaned)
	}
	return text
}

// restyleTables drops the source format's fixed column widths and forces a
// uniform bordered table style.
func restyleTables(text string) string {
	text = strings.ReplaceAll(text, ` width="40%"`, "")
	text = strings.ReplaceAll(text, ` width="60%"`, "")
	return strings.ReplaceAll(text, "<table>", `<table border="1" cellspacing="0" cellpadding="3">`)
}

var h3Pattern = regexp.MustCompile(`<h3>([^<]+)</h3>`)

func rewriteH3(text string) string {
	return h3Pattern.ReplaceAllString(text, "\n\n### $1\n\n")
}
