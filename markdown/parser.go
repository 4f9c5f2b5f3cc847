// Package markdown parses Microsoft-docs-style markdown sources and
// normalizes their markup for offline display.
package markdown

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fwojciec/msdocs"
)

// delimiter separates the front matter from the rest of a source file.
const delimiter = "---"

var (
	titleLinePattern     = regexp.MustCompile(`title:\s*(.*)`)
	functionTitlePattern = regexp.MustCompile(`(\S+) function`)
)

var _ msdocs.RecordParser = (*Parser)(nil)

// Parser extracts symbol records from markdown files with YAML front matter.
type Parser struct {
	// Force skips symbol name validation. Diagnostic use only.
	Force bool
}

// Parse extracts a record from the raw bytes of one source file. The path is
// used only for error messages.
func (p *Parser) Parse(path string, data []byte) (*msdocs.Record, error) {
	// Tolerate undecodable bytes instead of rejecting the whole file.
	text := strings.ToValidUTF8(string(data), "")

	// Only the first two delimiter occurrences are structural; the token can
	// legitimately reappear inside the body (tables, code blocks), so the
	// remaining segments are rejoined to reconstruct it.
	parts := strings.Split(text, delimiter)
	if len(parts) < 3 {
		return nil, msdocs.Errorf(msdocs.EINVALID, "invalid file format in %s", path)
	}
	frontMatter := parts[1]
	body := strings.Join(parts[2:], delimiter)

	name, err := symbolName(frontMatter, path)
	if err != nil {
		return nil, err
	}

	rec := &msdocs.Record{Name: name, Content: Normalize(body)}
	if !p.Force {
		if err := rec.Validate(); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// ParseFile reads and parses the source file at path.
func (p *Parser) ParseFile(path string) (*msdocs.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return p.Parse(path, data)
}

// symbolName extracts the documented symbol name from front matter. The
// title must have the shape "<token> function"; anything else (structures,
// enumerations, callbacks) is out of scope for this dataset.
func symbolName(frontMatter, path string) (string, error) {
	title, ok := frontMatterTitle(frontMatter)
	if !ok {
		return "", msdocs.Errorf(msdocs.EINVALID, "title is not present in %s", path)
	}

	match := functionTitlePattern.FindStringSubmatch(title)
	if match == nil {
		return "", msdocs.Errorf(msdocs.EINVALID, "unsupported title format in %s", path)
	}
	return strings.ReplaceAll(match[1], `\`, ""), nil
}

// frontMatterTitle reads the title field from front matter. YAML parsing
// comes first; a plain line scan catches the occasional nonconforming block
// the source trees contain.
func frontMatterTitle(frontMatter string) (string, bool) {
	var fm struct {
		Title string `yaml:"title"`
	}
	if err := yaml.Unmarshal([]byte(frontMatter), &fm); err == nil && fm.Title != "" {
		return fm.Title, true
	}

	if match := titleLinePattern.FindStringSubmatch(frontMatter); match != nil {
		return strings.TrimSpace(match[1]), true
	}
	return "", false
}
