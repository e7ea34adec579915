// Package css parses the small CSS dialect the overlay is styled with: .class and #id selectors,
// comma-separated selector groups and "key: value;" declarations. No combinators, no @rules.
package css

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Rule is a single selector and its property values (raw strings).
type Rule struct {
	Selector string            // e.g. ".menu-item" or "#toggle"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules; later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// Parse parses content into a Stylesheet. A selector group "a, b { ... }" yields one rule per selector.
// Blocks whose selectors are neither .class nor #id are skipped. An unclosed block is an error.
func Parse(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	s := stripComments(content)
	for {
		open := strings.Index(s, "{")
		if open == -1 {
			if rest := strings.TrimSpace(s); rest != "" {
				return sheet, fmt.Errorf("css: trailing text %q", firstLine(rest))
			}
			return sheet, nil
		}
		close := matchingBrace(s, open)
		if close == -1 {
			return sheet, fmt.Errorf("css: unclosed block after %q", firstLine(strings.TrimSpace(s[:open])))
		}
		props, err := parseDeclarations(s[open+1 : close])
		if err != nil {
			return sheet, fmt.Errorf("css: %s: %w", firstLine(strings.TrimSpace(s[:open])), err)
		}
		for _, sel := range strings.Split(s[:open], ",") {
			sel = strings.TrimSpace(sel)
			if !validSelector(sel) {
				continue
			}
			copied := make(map[string]string, len(props))
			for k, v := range props {
				copied[k] = v
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: copied})
		}
		s = s[close+1:]
	}
}

// Match returns the merged properties of every rule matching class or id, in sheet order (last wins).
func (s *Stylesheet) Match(class, id string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, r := range s.Rules {
		name := r.Selector[1:]
		if (r.Selector[0] == '.' && name == class) || (r.Selector[0] == '#' && name == id) {
			for k, v := range r.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

func validSelector(sel string) bool {
	return len(sel) >= 2 && (sel[0] == '.' || sel[0] == '#') && !strings.ContainsAny(sel, " \t\n>+~:[")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func stripComments(s string) string {
	var b strings.Builder
	for {
		i := strings.Index(s, "/*")
		if i == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		j := strings.Index(s[i+2:], "*/")
		if j == -1 {
			return b.String()
		}
		s = s[i+2+j+2:]
	}
}

func matchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// parseDeclarations reads the "key: value;" list of one block. Keys are lower-cased; a repeated key keeps
// its last value.
func parseDeclarations(body string) (map[string]string, error) {
	decls, err := parser.ParseDeclarations(body)
	if err != nil {
		return nil, err
	}
	props := make(map[string]string, len(decls))
	for _, d := range decls {
		k := strings.ToLower(strings.TrimSpace(d.Property))
		if k != "" {
			props[k] = strings.TrimSpace(d.Value)
		}
	}
	return props, nil
}
