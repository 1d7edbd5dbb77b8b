package styledecl

import (
	"fmt"
	"strings"
)

// LintConfig holds linter configuration
type LintConfig struct {
	ThemeFile string   // same theme the generator ran with
	ScanPaths []string // glob patterns for template files
	Verbose   bool
	Strict    bool // exit 1 on any issue (CI mode)

	// Output configuration
	MaxSameIssues    int // deduplicate repeated issues (0=unlimited)
	PrintIssuedLines bool
	PrintLinterName  bool
	UseColors        bool
}

// LintResult contains linting output
type LintResult struct {
	Issues         []Issue
	FilesScanned   int
	ClassesChecked int
	ErrorCount     int
	WarningCount   int
	TruncatedCount int
}

// Lint checks every class token found in the scanned templates against
// the framework rule table.
func Lint(config LintConfig) (*LintResult, error) {
	theme, err := LoadTheme(config.ThemeFile)
	if err != nil {
		return nil, fmt.Errorf("theme failed: %w", err)
	}
	ctx := BuildContext(theme)

	refs, stats, err := ScanFiles(config.ScanPaths, config.Verbose)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	result := &LintResult{FilesScanned: stats.FilesScanned}

	variants := make(map[string]bool, len(ctx.Variants))
	for _, v := range ctx.Variants {
		variants[v] = true
	}

	sameCount := make(map[string]int)

	for _, ref := range refs {
		for _, token := range strings.Fields(ref.FullClassValue) {
			result.ClassesChecked++

			issue, ok := checkToken(ctx, variants, token, ref)
			if !ok {
				continue
			}

			if config.MaxSameIssues > 0 {
				sameCount[issue.Text]++
				if sameCount[issue.Text] > config.MaxSameIssues {
					result.TruncatedCount++
					continue
				}
			}

			result.Issues = append(result.Issues, issue)
		}
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	return result, nil
}

// checkToken validates a single class token, variant prefixes included.
// The second return is false when the token is fine.
func checkToken(ctx *Context, variants map[string]bool, token string, ref ClassReference) (Issue, bool) {
	// Arbitrary values are used verbatim and always admissible.
	if strings.Contains(token, "[") {
		return Issue{}, false
	}

	name := token
	for strings.Contains(name, ":") {
		prefix, rest, _ := strings.Cut(name, ":")
		if !variants[prefix] {
			return newIssue(ref, SeverityWarning,
				fmt.Sprintf(IssueUnknownVariant, prefix, token)), true
		}
		name = rest
	}

	if name == "" {
		return Issue{}, false
	}

	if res := Resolve(ctx.Rules, name); res.Entries == nil {
		return newIssue(ref, SeverityError,
			fmt.Sprintf(IssueUnknownClass, name)), true
	}

	return Issue{}, false
}

func newIssue(ref ClassReference, severity, text string) Issue {
	return Issue{
		FromLinter:  "styledecl",
		Text:        text,
		Severity:    severity,
		SourceLines: []string{ref.LineContent},
		Pos: IssuePos{
			Filename: GetRelativePath(ref.Location.File),
			Line:     ref.Location.Line,
			Column:   ref.Location.Column,
		},
	}
}
