package confparse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/mit-orcd/coldfront-deployctl/internal/errors"
	"github.com/mit-orcd/coldfront-deployctl/internal/logging"
)

var (
	// topLevelRegex matches a column-0 "key:" or "key: value" line.
	// The colon may be followed by whitespace; the rest is the raw value.
	topLevelRegex = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*):[ \t]*(.*)$`)

	// nestedRegex matches an indented "key: value" line inside a section.
	nestedRegex = regexp.MustCompile(`^[ \t]+([A-Za-z_][A-Za-z0-9_]*):[ \t]*(.*)$`)
)

// Options control parsing behavior.
type Options struct {
	// Prefix is prepended to every generated name. May be empty.
	Prefix string

	// Strict upgrades skipped lines and duplicate names to a config error.
	Strict bool
}

// Assignment is one generated name/value binding.
type Assignment struct {
	Name    string
	Value   string
	Section string // section the binding came from, empty for top-level
	Line    int    // 1-based source line
}

// String renders the assignment as a shell-safe "name=value" line. Values
// are quoted with shell rules so the output can be sourced or eval'd by
// legacy consumers without interpreting value content.
func (a Assignment) String() string {
	return a.Name + "=" + shellquote.Join(a.Value)
}

// SkippedLine records an input line the parser could not interpret.
type SkippedLine struct {
	Line   int
	Text   string
	Reason string
}

// Skip reasons.
const (
	ReasonMalformed      = "malformed line"
	ReasonOutsideSection = "indented line outside a section"
	ReasonEmptyValue     = "empty value"
)

// Result holds the parser output for one document.
type Result struct {
	// Flat holds top-level assignments in file order.
	Flat []Assignment

	// Nested holds section assignments in file order.
	Nested []Assignment

	// Skipped holds lines that produced no binding and no section change.
	Skipped []SkippedLine
}

// Assignments returns the full emission sequence: all top-level assignments
// in file order, then all section assignments in file order. This is the
// order downstream consumers bind names in.
func (r *Result) Assignments() []Assignment {
	out := make([]Assignment, 0, len(r.Flat)+len(r.Nested))
	out = append(out, r.Flat...)
	out = append(out, r.Nested...)
	return out
}

// Lines renders every assignment as a shell-safe line, one per assignment,
// in emission order.
func (r *Result) Lines() []string {
	asgs := r.Assignments()
	lines := make([]string, len(asgs))
	for i, a := range asgs {
		lines[i] = a.String()
	}
	return lines
}

// Parse reads a restricted-subset document from r and returns its
// assignments. It is a single pass over the input: the parser is either
// outside any section or inside the section named by the last bare
// top-level key, and every line is classified against that state.
func Parse(r io.Reader, opts Options) (*Result, error) {
	res := &Result{}
	section := "" // current section name, empty at top level

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			// Blanks and comments never end a section.
			continue
		}

		if line[0] != ' ' && line[0] != '\t' {
			section = res.parseTopLevel(line, lineno, opts.Prefix)
			continue
		}

		res.parseNested(line, lineno, opts.Prefix, section)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, "failed to read config", err)
	}

	if opts.Strict {
		if err := res.strictViolations(); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// parseTopLevel classifies a column-0 line and returns the new section
// state. Every top-level line ends the current section; only a bare
// "key:" opens a new one.
func (r *Result) parseTopLevel(line string, lineno int, prefix string) (section string) {
	m := topLevelRegex.FindStringSubmatch(line)
	if m == nil {
		r.skip(lineno, line, ReasonMalformed)
		return ""
	}

	key := m[1]
	raw := strings.TrimRight(m[2], " \t")
	if raw == "" {
		return key // section header
	}

	value := stripQuotes(raw)
	if value == "" {
		// Explicitly quoted empty value: the key is absent, not empty.
		return ""
	}

	r.Flat = append(r.Flat, Assignment{
		Name:  prefix + key,
		Value: value,
		Line:  lineno,
	})
	return ""
}

// parseNested classifies an indented line against the current section.
func (r *Result) parseNested(line string, lineno int, prefix, section string) {
	if section == "" {
		r.skip(lineno, line, ReasonOutsideSection)
		return
	}

	m := nestedRegex.FindStringSubmatch(line)
	if m == nil {
		r.skip(lineno, line, ReasonMalformed)
		return
	}

	key := m[1]
	raw := strings.TrimRight(m[2], " \t")
	if raw == "" {
		// Deeper nesting is not part of the subset.
		r.skip(lineno, line, ReasonEmptyValue)
		return
	}

	value := stripQuotes(raw)
	if value == "" {
		return
	}

	r.Nested = append(r.Nested, Assignment{
		Name:    prefix + section + "_" + key,
		Value:   value,
		Section: section,
		Line:    lineno,
	})
}

func (r *Result) skip(lineno int, text, reason string) {
	logging.Debug("skipping config line", "line", lineno, "reason", reason)
	r.Skipped = append(r.Skipped, SkippedLine{Line: lineno, Text: text, Reason: reason})
}

// strictViolations reports skipped lines and duplicate names as an error.
func (r *Result) strictViolations() error {
	if n := len(r.Skipped); n > 0 {
		first := r.Skipped[0]
		return errors.ConfigError(
			fmt.Sprintf("%d unparseable line(s), first at line %d (%s)", n, first.Line, first.Reason), nil)
	}
	if dups := r.Duplicates(); len(dups) > 0 {
		first := dups[0]
		return errors.ConfigError(
			fmt.Sprintf("%d duplicate name(s), first is %s at lines %d and %d",
				len(dups), first.Name, first.FirstLine, first.Line), nil)
	}
	return nil
}

// stripQuotes removes one surrounding pair of matching single or double
// quotes. Unmatched or inner quotes are preserved.
func stripQuotes(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// ParseFile parses the document at path. A missing or unreadable file is a
// not-found error; no partial result is returned.
func ParseFile(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.ConfigNotFound(path, err)
	}
	defer f.Close()

	logging.Debug("parsing config", "path", path, "prefix", opts.Prefix, "strict", opts.Strict)
	return Parse(f, opts)
}
