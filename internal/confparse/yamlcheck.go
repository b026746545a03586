package confparse

import (
	"fmt"
	"regexp"

	"github.com/goccy/go-yaml"
)

// identRegex matches the key shape the restricted parser accepts.
var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// CrossCheck parses data as a full YAML document and reports every construct
// the restricted parser drops without a binding: lists, mappings nested below
// a section, and keys that are not plain identifiers. The findings are
// human-readable warnings, one per construct, in document order. A document
// the full parser rejects outright yields a single finding.
func CrossCheck(data []byte) []string {
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return []string{"not parseable as full YAML: " + yaml.FormatError(err, false, false)}
	}
	if doc == nil {
		return nil
	}

	top, ok := doc.(yaml.MapSlice)
	if !ok {
		return []string{fmt.Sprintf("top level is %s, not a mapping; no settings can be generated", yamlKind(doc))}
	}

	var findings []string
	for _, item := range top {
		key, ok := identKey(item.Key)
		if !ok {
			findings = append(findings, fmt.Sprintf("top-level key %v is not a plain identifier and is skipped", item.Key))
			continue
		}
		switch v := item.Value.(type) {
		case yaml.MapSlice:
			findings = append(findings, checkSection(key, v)...)
		case []any:
			findings = append(findings, fmt.Sprintf("%s holds a list; lists are dropped", key))
		}
	}
	return findings
}

// checkSection walks one section's entries. Any value below a section must
// be a scalar; the restricted parser has no third level.
func checkSection(section string, items yaml.MapSlice) []string {
	var findings []string
	for _, item := range items {
		key, ok := identKey(item.Key)
		if !ok {
			findings = append(findings, fmt.Sprintf("key %v in section %s is not a plain identifier and is skipped", item.Key, section))
			continue
		}
		switch item.Value.(type) {
		case yaml.MapSlice:
			findings = append(findings, fmt.Sprintf("%s.%s nests a third level; everything below it is dropped", section, key))
		case []any:
			findings = append(findings, fmt.Sprintf("%s.%s holds a list; lists are dropped", section, key))
		}
	}
	return findings
}

// identKey reports whether a YAML key is a string the restricted parser
// would accept. Non-string keys (ints, bools) fail by construction.
func identKey(key any) (string, bool) {
	s, ok := key.(string)
	if !ok {
		return "", false
	}
	return s, identRegex.MatchString(s)
}

func yamlKind(v any) string {
	switch v.(type) {
	case yaml.MapSlice:
		return "a mapping"
	case []any:
		return "a list"
	default:
		return fmt.Sprintf("a %T value", v)
	}
}
