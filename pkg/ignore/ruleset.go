package ignore

import "strings"

// RuleSet is an ordered collection of rules loaded from one origin, scoped to
// the directory the origin lives in.
type RuleSet struct {
	Dir    string // Slash-separated directory relative to the root; "" for the root.
	Source string // Origin label, e.g. "sub/.gitignore" or "--ignore".
	Rules  []Rule
}

// NewRuleSet compiles lines into a rule set scoped to dir. Empty lines and
// comments are skipped but still count towards line numbers.
func NewRuleSet(dir, source string, lines ...string) RuleSet {
	rs := RuleSet{Dir: strings.Trim(dir, "/"), Source: source}
	rs.CompileLines(lines...)
	return rs
}

// CompileLines appends the given lines to the set. Line numbers continue from
// the last compiled line.
func (rs *RuleSet) CompileLines(lines ...string) {
	domain := SplitPath(rs.Dir)
	base := 0
	if n := len(rs.Rules); n > 0 {
		base = rs.Rules[n-1].LineNo
	}
	for i, line := range lines {
		rule, ok := ParseRule(line, domain)
		if !ok {
			continue
		}
		rule.Source = rs.Source
		rule.LineNo = base + i + 1
		rs.Rules = append(rs.Rules, rule)
	}
}

// Len returns the number of compiled rules.
func (rs RuleSet) Len() int {
	return len(rs.Rules)
}

// Match evaluates every rule in order and returns the verdict of the last
// matching one.
func (rs RuleSet) Match(path []string, isDir bool) (Verdict, *Rule) {
	verdict := NoMatch
	var matched *Rule
	for i := range rs.Rules {
		if v := rs.Rules[i].Match(path, isDir); v != NoMatch {
			verdict = v
			matched = &rs.Rules[i]
		}
	}
	return verdict, matched
}

// Stack is an ordered list of rule sets, lowest precedence first. A later
// matching rule overrides any earlier one, whichever set it belongs to.
type Stack []RuleSet

// Push returns a new stack with rs on top. The receiver is not modified, so a
// parent directory's stack can be shared by all of its children.
func (s Stack) Push(rs ...RuleSet) Stack {
	out := make(Stack, 0, len(s)+len(rs))
	out = append(out, s...)
	for _, set := range rs {
		if set.Len() > 0 {
			out = append(out, set)
		}
	}
	return out
}

// MatchesPath checks if relativePath is ignored by the stack.
func (s Stack) MatchesPath(relativePath string, isDir bool) bool {
	ignored, _ := s.MatchesPathWithRule(relativePath, isDir)
	return ignored
}

// MatchesPathWithRule checks if relativePath is ignored and returns the rule
// that decided it, if any. A negation rule that matches last un-ignores the
// path and is returned as the deciding rule.
func (s Stack) MatchesPathWithRule(relativePath string, isDir bool) (bool, *Rule) {
	path := SplitPath(relativePath)
	if len(path) == 0 {
		return false, nil
	}

	verdict := NoMatch
	var matched *Rule
	for _, set := range s {
		if v, rule := set.Match(path, isDir); v != NoMatch {
			verdict = v
			matched = rule
		}
	}
	return verdict == Exclude, matched
}
