package styledecl

import "sort"

// colorFamily binds a rule name prefix to the CSS property it sets.
type colorFamily struct {
	prefix   string
	property string
}

var colorFamilies = []colorFamily{
	{"bg", "background-color"},
	{"text", "color"},
	{"border", "border-color"},
}

// spacingFamily binds a rule name prefix to the properties it sets.
type spacingFamily struct {
	prefix     string
	properties []string
}

var spacingFamilies = []spacingFamily{
	{"p", []string{"padding"}},
	{"px", []string{"padding-left", "padding-right"}},
	{"py", []string{"padding-top", "padding-bottom"}},
	{"m", []string{"margin"}},
	{"mx", []string{"margin-left", "margin-right"}},
	{"my", []string{"margin-top", "margin-bottom"}},
}

// staticRules are utilities with a fixed rule set.
var staticRules = map[string][]*CSSDecl{
	"block":  {Decl("display", "block")},
	"flex":   {Decl("display", "flex")},
	"grid":   {Decl("display", "grid")},
	"inline": {Decl("display", "inline")},
	"hidden": {Decl("display", "none")},
	"truncate": {
		Decl("overflow", "hidden"),
		Decl("text-overflow", "ellipsis"),
		Decl("white-space", "nowrap"),
	},
}

// BuildContext assembles the framework context from a theme: the rule
// table, the enumerated class list, variants and value scales. Every
// slice is sorted so repeated builds produce identical output.
func BuildContext(theme *Theme) *Context {
	rules := make(map[string][]RuleEntry)
	var classNames []string

	for _, fam := range colorFamilies {
		for _, colorName := range sortedKeys(theme.Colors) {
			shades := theme.Colors[colorName]
			ruleName := fam.prefix + "-" + colorName
			rules[ruleName] = []RuleEntry{colorEntry(ruleName, fam.property, shades)}

			for _, shade := range sortedKeys(shades) {
				classNames = append(classNames, ruleName+"-"+shade)
			}
		}
	}

	for _, fam := range spacingFamilies {
		rules[fam.prefix] = []RuleEntry{spacingEntry(fam.prefix, fam.properties, theme.Spacing)}
		for _, token := range sortedKeys(theme.Spacing) {
			classNames = append(classNames, fam.prefix+"-"+token)
		}
	}

	for _, name := range sortedKeys(staticRules) {
		decls := staticRules[name]
		nodes := make([]CSSNode, len(decls))
		for i, d := range decls {
			nodes[i] = d
		}
		rules[name] = []RuleEntry{{Kind: KindStatic, Static: Rule("."+name, nodes...)}}
		classNames = append(classNames, name)
	}

	rules["container"] = containerEntries(theme.Screens)
	classNames = append(classNames, "container")

	sort.Strings(classNames)

	arbitrary := []Scale{
		{Family: "p", Values: sortedKeys(theme.Spacing)},
		{Family: "m", Values: sortedKeys(theme.Spacing)},
	}

	return &Context{
		Rules:           rules,
		ClassNames:      classNames,
		ArbitraryScales: arbitrary,
		Variants:        theme.Variants,
		OpacityScale:    theme.Opacity,
	}
}

// colorEntry builds a generator for a color-valued rule. Value tokens
// outside the shade scale are used verbatim as arbitrary values.
func colorEntry(ruleName, property string, shades map[string]string) RuleEntry {
	return RuleEntry{
		Kind: KindGenerator,
		Generate: func(value string) *CSSRule {
			if value == DefaultValue {
				return Rule("."+ruleName, Decl(property, defaultShade(shades)))
			}
			hex, ok := shades[value]
			if !ok {
				hex = value
			}
			return Rule("."+ruleName+"-"+value, Decl(property, hex))
		},
	}
}

// defaultShade picks the value a bare color rule renders with.
func defaultShade(shades map[string]string) string {
	if hex, ok := shades["500"]; ok {
		return hex
	}
	keys := sortedKeys(shades)
	if len(keys) == 0 {
		return "currentColor"
	}
	return shades[keys[0]]
}

// spacingEntry builds a generator for a spacing rule.
func spacingEntry(ruleName string, properties []string, scale map[string]string) RuleEntry {
	return RuleEntry{
		Kind: KindGenerator,
		Generate: func(value string) *CSSRule {
			selector := "." + ruleName
			token := value
			if value == DefaultValue {
				token = "0"
			} else {
				selector += "-" + value
			}
			size, ok := scale[token]
			if !ok {
				size = token
			}
			nodes := make([]CSSNode, len(properties))
			for i, p := range properties {
				nodes[i] = Decl(p, size)
			}
			return Rule(selector, nodes...)
		},
	}
}

// containerEntries returns the ordered entry list for the container
// rule: a static base plus one at-rule entry per breakpoint.
func containerEntries(screens map[string]string) []RuleEntry {
	entries := []RuleEntry{
		{Kind: KindStatic, Static: Rule(".container", Decl("width", "100%"))},
	}

	// Sort by min-width so narrower breakpoints render first.
	names := sortedKeys(screens)
	sort.Slice(names, func(i, j int) bool {
		return screenWidth(screens[names[i]]) < screenWidth(screens[names[j]])
	})

	for _, name := range names {
		width := screens[name]
		entries = append(entries, RuleEntry{
			Kind: KindStatic,
			Static: AtRule("media", "(min-width: "+width+")",
				Rule(".container", Decl("max-width", width))),
		})
	}

	return entries
}

// screenWidth extracts the leading numeric portion of a length for
// breakpoint ordering.
func screenWidth(length string) int {
	n := 0
	for i := 0; i < len(length) && length[i] >= '0' && length[i] <= '9'; i++ {
		n = n*10 + int(length[i]-'0')
	}
	return n
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
