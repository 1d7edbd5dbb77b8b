package styledecl

// RuleKind discriminates the two shapes a rule entry can take.
// Entries are classified once when the rule table is built, so the
// emitter never has to inspect values at runtime.
type RuleKind int

// Rule entry kinds.
const (
	// KindGenerator entries build a rule set from a value token.
	KindGenerator RuleKind = iota
	// KindStatic entries carry a fixed rule set.
	KindStatic
)

// DefaultValue is the token passed to a generator when a class name
// matched a rule with no residual suffix.
const DefaultValue = "DEFAULT"

// RuleEntry is one registered definition backing a utility class family.
// A rule name may map to multiple entries; all are rendered in order.
type RuleEntry struct {
	Kind     RuleKind
	Generate func(value string) *CSSRule // set when Kind == KindGenerator
	Static   CSSNode                     // set when Kind == KindStatic
}

// Resolution is the result of resolving a candidate class name against
// the rule table. Entries is nil when no rule matched. Rest holds the
// dash-joined suffix that was split off while searching for a match.
type Resolution struct {
	Name    string // matched rule name, "" on a miss
	Entries []RuleEntry
	Rest    string
}

// Scale is an enumerated set of admissible values for a rule family.
type Scale struct {
	Family string   // rule name prefix, e.g. "p"
	Values []string // admissible tokens in render order
}

// Context is the framework state the emitter consumes: the rule table,
// the enumerated class list, variant names and value scales.
type Context struct {
	Rules           map[string][]RuleEntry
	ClassNames      []string // sorted, deterministic
	ArbitraryScales []Scale
	Variants        []string
	OpacityScale    []string
}

// Config holds generator configuration.
type Config struct {
	ThemeFile            string  // optional YAML theme overrides ("" = built-in defaults)
	Output               string  // declaration file path, overwritten wholesale
	ShowPixelEquivalents bool    // annotate rem/em literals with px comments
	RootFontSize         float64 // base size for the px conversion (default: 16)
	Verbose              bool    // enable progress logging
}

// GenerateResult contains generation stats.
type GenerateResult struct {
	ClassesEmitted  int
	VariantsEmitted int
	ColorsCollected int
	Warnings        []string
}

// OutputFormat represents the linter output format.
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
