package seqgen

import "strings"

// Rule is one textual substitution applied to a saved template line.
// Pattern is replaced by Replacement on every occurrence, but only when
// When is nil or reports true for the line as it stood before this rule.
type Rule struct {
	Name        string
	Pattern     string
	Replacement string
	When        func(line string) bool
}

// Apply runs the rule against line.
func (r Rule) Apply(line string) string {
	if r.When != nil && !r.When(line) {
		return line
	}
	return strings.ReplaceAll(line, r.Pattern, r.Replacement)
}

func hasQuote(line string) bool {
	return strings.Contains(line, `"`)
}

func noQuote(line string) bool {
	return !hasQuote(line)
}

// Rules is the ordered substitution list. The prefixed container rules must
// run before the bare container rule since ExSeq is a substring of ExSeq_.
// Token pasting does not work inside string literals, so quoted lines get the
// stringized form instead.
var Rules = []Rule{
	{
		Name:        "container-prefix-stringize",
		Pattern:     ContainerPrefix,
		Replacement: `"#` + SeqParam + `"_`,
		When:        hasQuote,
	},
	{
		Name:        "container-prefix-paste",
		Pattern:     ContainerPrefix,
		Replacement: SeqParam + "##_",
		When:        noQuote,
	},
	{
		Name:        "container",
		Pattern:     ContainerPlaceholder,
		Replacement: SeqParam,
	},
	{
		Name:        "element",
		Pattern:     ElementPlaceholder,
		Replacement: TypeParam,
	},
}

// Substitute rewrites a saved line into macro body text.
// Quotes and backslashes already on the line are not escaped.
func Substitute(line string) string {
	for _, r := range Rules {
		line = r.Apply(line)
	}
	return line
}
