package services

import "regexp"

// Rule locates one report field in page text. Patterns are tried in order
// and the first one that matches wins; Group selects the capture group that
// carries the value. A rule that matches nothing is a non-fatal miss.
type Rule struct {
	Name     string
	Patterns []*regexp.Regexp
	Group    int
}

// Find runs the rule against text and returns the captured value.
func (r Rule) Find(text string) (string, bool) {
	for _, p := range r.Patterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		g := r.Group
		if g <= 0 || g >= len(m) {
			g = len(m) - 1
		}
		return trimField(m[g]), true
	}
	return "", false
}

// RuleSet is the full rule table for one format variant.
type RuleSet map[string]Rule

// Find looks up a named rule and applies it. Unknown rule names behave like
// a pattern miss so variants can omit fields they do not carry.
func (rs RuleSet) Find(name, text string) (string, bool) {
	r, ok := rs[name]
	if !ok {
		return "", false
	}
	return r.Find(text)
}

// withOverrides returns a copy of the base table with the given rules
// replacing (or extending) their same-named base entries.
func (rs RuleSet) withOverrides(overrides []Rule) RuleSet {
	out := make(RuleSet, len(rs)+len(overrides))
	for k, v := range rs {
		out[k] = v
	}
	for _, r := range overrides {
		out[r.Name] = r
	}
	return out
}

func rule(name string, group int, patterns ...string) Rule {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return Rule{Name: name, Patterns: compiled, Group: group}
}

func trimField(s string) string {
	// Field captures frequently drag trailing label separators along.
	for len(s) > 0 {
		last := s[len(s)-1]
		if last == ' ' || last == '\t' || last == '\r' || last == ':' {
			s = s[:len(s)-1]
			continue
		}
		break
	}
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	return s
}
