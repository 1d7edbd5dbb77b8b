package styledecl

import "strings"

// Resolve finds the rule entry backing a candidate class name.
//
// Utility class names are compositional: "bg-blue-500" may be registered
// as rule "bg-blue" with value "500", or rule "bg" with value "blue-500",
// depending on what the framework registered. Resolve tries the full name
// first and then progressively shorter dash-delimited prefixes, carrying
// the split-off segments as the residual value token.
func Resolve(rules map[string][]RuleEntry, name string) Resolution {
	candidate := name
	rest := ""

	for {
		if entries, ok := rules[candidate]; ok {
			return Resolution{Name: candidate, Entries: entries, Rest: rest}
		}

		idx := strings.LastIndex(candidate, "-")
		if idx < 0 {
			// No separator left: no rule found, whatever suffix
			// accumulated stays with the result.
			return Resolution{Rest: rest}
		}

		segment := candidate[idx+1:]
		if rest == "" {
			rest = segment
		} else {
			rest = segment + "-" + rest
		}
		candidate = candidate[:idx]
	}
}
