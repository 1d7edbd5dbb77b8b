// Package styledecl generates a typed, chainable builder API from the
// rule table of a CSS utility-class framework.
//
// styledecl inspects the framework's registered rules and emits a single
// TypeScript declaration file where every utility class is a documented
// property and every variant is a callable modifier. The file is consumed
// by a type checker; it is never executed.
//
// # Generation
//
// Emit the declaration file from the built-in rule table:
//
//	config := styledecl.Config{
//		Output:               "types/styledecl.d.ts",
//		ShowPixelEquivalents: true,
//		RootFontSize:         16,
//	}
//	result, err := styledecl.Generate(config)
//
// # Linting
//
// Check class-attribute strings in template files against the same
// rule table:
//
//	lintConfig := styledecl.LintConfig{
//		ScanPaths: []string{"web/**/*.{html,tsx}"},
//	}
//	result, err := styledecl.Lint(lintConfig)
//
// # CLI Tool
//
// styledecl also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/styledecl/cmd/styledecl@latest
package styledecl
