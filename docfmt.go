package styledecl

import (
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Formatter turns raw rule-set CSS into a documentation block: the
// pretty-printed CSS wrapped in a fenced code block, optionally with
// pixel-equivalent annotations on relative-length literals.
//
// All configuration is fixed at construction time.
type Formatter struct {
	showPixelEquivalents bool
	rootFontSize         float64
}

// FormatterConfig holds the recognized documentation options.
type FormatterConfig struct {
	ShowPixelEquivalents bool
	RootFontSize         float64
}

// DefaultRootFontSize is used when no base size is configured.
const DefaultRootFontSize = 16

// NewFormatter creates a formatter with the given configuration.
func NewFormatter(config FormatterConfig) *Formatter {
	size := config.RootFontSize
	if size <= 0 {
		size = DefaultRootFontSize
	}
	return &Formatter{
		showPixelEquivalents: config.ShowPixelEquivalents,
		rootFontSize:         size,
	}
}

// relativeLength matches rem/em literals like "0.25rem" or "2em".
var relativeLength = regexp.MustCompile(`(\d*\.?\d+)r?em\b`)

var errUnbalancedCSS = errors.New("unbalanced rule set")

// Doc returns the documentation block for a raw rule-set string.
// Formatting failures degrade to the unformatted input; this boundary
// never returns an error.
func (f *Formatter) Doc(raw string) string {
	formatted, err := f.prettyPrint(raw)
	if err != nil {
		formatted = raw
	}
	if f.showPixelEquivalents {
		formatted = f.annotatePixels(formatted)
	}
	return "```css\n" + strings.TrimRight(formatted, "\n") + "\n```"
}

// prettyPrint reflows compact rule-set text into one declaration per
// line with two-space indentation.
func (f *Formatter) prettyPrint(raw string) (string, error) {
	lexer := css.NewLexer(parse.NewInputString(raw))

	var out strings.Builder
	var line strings.Builder
	depth := 0

	indent := func() string { return strings.Repeat("  ", depth) }
	flush := func(suffix string) {
		text := strings.TrimSpace(line.String())
		line.Reset()
		if text == "" {
			return
		}
		out.WriteString(indent())
		out.WriteString(text)
		out.WriteString(suffix)
		out.WriteString("\n")
	}

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return "", err
			}
			break
		}

		switch tt {
		case css.WhitespaceToken:
			if s := line.String(); s != "" && !strings.HasSuffix(s, " ") {
				line.WriteString(" ")
			}
		case css.LeftBraceToken:
			text := strings.TrimSpace(line.String())
			line.Reset()
			out.WriteString(indent())
			out.WriteString(text)
			out.WriteString(" {\n")
			depth++
		case css.RightBraceToken:
			flush(";")
			depth--
			if depth < 0 {
				return "", errUnbalancedCSS
			}
			out.WriteString(indent())
			out.WriteString("}\n")
		case css.SemicolonToken:
			flush(";")
		case css.ColonToken:
			if isSelectorLine(line.String()) {
				line.WriteString(":")
			} else {
				line.WriteString(": ")
			}
		default:
			line.Write(data)
		}
	}

	if depth != 0 || strings.TrimSpace(line.String()) != "" {
		return "", errUnbalancedCSS
	}

	return out.String(), nil
}

// isSelectorLine reports whether the pending line is selector text, in
// which case a colon starts a pseudo-class rather than a value.
func isSelectorLine(pending string) bool {
	return strings.ContainsAny(pending, ".#&@") || strings.Contains(pending, ":")
}

// annotatePixels appends a same-line pixel-equivalent comment after
// every relative-length literal.
func (f *Formatter) annotatePixels(text string) string {
	return relativeLength.ReplaceAllStringFunc(text, func(match string) string {
		literal := strings.TrimSuffix(strings.TrimSuffix(match, "rem"), "em")
		v, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			return match
		}
		px := strconv.FormatFloat(v*f.rootFontSize, 'f', -1, 64)
		return match + " /* " + px + "px */"
	})
}
