package styledecl

import (
	"fmt"
	"sort"
	"strings"
)

// colorProperties are the declaration properties that mark a rule as
// color-valued for the Colors union.
var colorProperties = map[string]bool{
	"color":            true,
	"background-color": true,
	"border-color":     true,
	"outline-color":    true,
	"fill":             true,
	"stroke":           true,
}

// Emitter renders a framework context into the declaration-file AST.
//
// The Standard pass mutates the color set as a side effect of
// classifying color-valued rules, so the Colors alias must be built
// after it has fully executed.
type Emitter struct {
	ctx      *Context
	fmtr     *Formatter
	colors   map[string]struct{}
	warnings []string
}

// NewEmitter creates an emitter over the given framework context.
func NewEmitter(ctx *Context, fmtr *Formatter) *Emitter {
	return &Emitter{
		ctx:    ctx,
		fmtr:   fmtr,
		colors: make(map[string]struct{}),
	}
}

// EscapeIdent turns a utility class name into a property-name token:
// the leading negation marker becomes "$", dashes become underscores.
// A name with neither is returned unchanged.
func EscapeIdent(name string) string {
	if strings.HasPrefix(name, "-") {
		name = "$" + name[1:]
	}
	return strings.ReplaceAll(name, "-", "_")
}

// Emit builds the full declaration document. Warnings report escaped
// identifier collisions; the emitted output keeps the last writer, as
// an associative layout would.
func (e *Emitter) Emit() (*File, []string, error) {
	standard := e.standardMembers()
	arbitrary := e.arbitraryMembers()
	variants := e.variantMembers()

	members := make([]Member, 0, len(standard)+len(arbitrary)+len(variants))
	members = append(members, standard...)
	members = append(members, arbitrary...)
	members = append(members, variants...)

	file := &File{
		Header: "// Code generated by styledecl. DO NOT EDIT.",
		Aliases: []TypeAlias{
			{
				Name: "Styled",
				Doc:  "An opaque style token produced by the builder.",
				Type: &TypeRef{Name: "string & { readonly __styled?: never }"},
			},
			{
				Name: "Property<T>",
				Doc:  "A style property. Accessing one yields the builder again, so\nproperties chain.",
				Type: &TypeRef{Name: "T & Styledecl"},
			},
			{
				Name: "Styledecl",
				Doc:  "The chainable builder over every known utility class.",
				Type: &ObjectType{Members: members},
			},
			{
				Name: "Variant",
				Doc:  "Conditional modifiers known to the framework.",
				Type: &LiteralUnion{Literals: e.ctx.Variants},
			},
			// Colors depends on the Standard pass above having run.
			{
				Name: "Colors",
				Doc:  "Color families referenced by color-valued rules.",
				Type: &LiteralUnion{Literals: e.collectedColors()},
			},
			{
				Name: "Opacity",
				Doc:  "Opacity scale keys. Declared but not combined with colors.",
				Type: &LiteralUnion{Literals: e.ctx.OpacityScale},
			},
		},
	}

	return file, e.warnings, nil
}

// standardMembers renders one property per framework class name.
func (e *Emitter) standardMembers() []Member {
	members := make([]Member, 0, len(e.ctx.ClassNames))
	byKey := make(map[string]int)

	for _, name := range e.ctx.ClassNames {
		key := EscapeIdent(name)
		member := &PropertyMember{
			Key:  key,
			Type: &TypeRef{Name: "Property<Styled>"},
		}

		res := Resolve(e.ctx.Rules, name)
		if res.Entries != nil {
			// A full-string match signals the rule's default value.
			value := res.Rest
			if value == "" {
				value = DefaultValue
			}
			member.Doc = e.fmtr.Doc(e.renderEntries(res, value))
		}
		// Resolution miss: emitted with an empty body, not an error.

		if prev, ok := byKey[key]; ok {
			e.warnings = append(e.warnings, fmt.Sprintf(
				"identifier collision: %q overwrites an earlier class at key %s", name, key))
			members[prev] = member
			continue
		}
		byKey[key] = len(members)
		members = append(members, member)
	}

	return members
}

// renderEntries renders every entry of a resolved rule, in order, and
// concatenates the CSS text. Color classification happens here.
func (e *Emitter) renderEntries(res Resolution, value string) string {
	parts := make([]string, 0, len(res.Entries))
	for _, entry := range res.Entries {
		var node CSSNode
		switch entry.Kind {
		case KindGenerator:
			node = entry.Generate(value)
		case KindStatic:
			node = entry.Static
		}
		if node == nil {
			continue
		}
		e.classifyColors(res.Name, node)
		parts = append(parts, RenderCSS(node))
	}
	return strings.Join(parts, "\n")
}

// classifyColors records the rule's color family when any declaration
// in the rendered graph sets a color-valued property.
func (e *Emitter) classifyColors(ruleName string, node CSSNode) {
	idx := strings.Index(ruleName, "-")
	if idx < 0 {
		return
	}
	family := ruleName[idx+1:]

	walkDecls(node, func(d *CSSDecl) {
		if colorProperties[d.Property] {
			e.colors[family] = struct{}{}
		}
	})
}

// walkDecls visits every declaration node in a graph.
func walkDecls(node CSSNode, fn func(*CSSDecl)) {
	switch n := node.(type) {
	case *CSSDecl:
		fn(n)
	case *CSSRule:
		for _, child := range n.Nodes {
			walkDecls(child, fn)
		}
	case *CSSAtRule:
		for _, child := range n.Nodes {
			walkDecls(child, fn)
		}
	}
}

// collectedColors returns the color set gathered by the Standard pass.
func (e *Emitter) collectedColors() []string {
	colors := make([]string, 0, len(e.colors))
	for c := range e.colors {
		colors = append(colors, c)
	}
	sort.Strings(colors)
	return colors
}

// Colors exposes the collected color families for reporting.
func (e *Emitter) Colors() []string {
	return e.collectedColors()
}

// arbitraryMembers renders each value scale as a nested object type
// with an open-ended fallback for arbitrary values.
func (e *Emitter) arbitraryMembers() []Member {
	members := make([]Member, 0, len(e.ctx.ArbitraryScales))

	for _, scale := range e.ctx.ArbitraryScales {
		entries, ok := e.ctx.Rules[scale.Family]
		if !ok {
			continue
		}

		nested := make([]Member, 0, len(scale.Values)+1)
		for _, value := range scale.Values {
			doc := e.fmtr.Doc(e.renderEntries(Resolution{
				Name:    scale.Family,
				Entries: entries,
			}, value))
			nested = append(nested, &PropertyMember{
				Key:  value,
				Type: &TypeRef{Name: "Property<Styled>"},
				Doc:  doc,
			})
		}
		nested = append(nested, &IndexMember{
			KeyName: "arbitrary",
			KeyType: "string",
			Type:    &TypeRef{Name: "Styled"},
		})

		members = append(members, &PropertyMember{
			Key:  EscapeIdent(scale.Family),
			Type: &ObjectType{Members: nested},
		})
	}

	return members
}

// variantMembers renders one callable modifier per variant, plus the
// fixed important modifier.
func (e *Emitter) variantMembers() []Member {
	members := make([]Member, 0, len(e.ctx.Variants)+1)

	for _, v := range e.ctx.Variants {
		members = append(members, &MethodMember{
			Name:       EscapeIdent(v),
			Param:      "style",
			ParamType:  "Styled",
			ReturnType: "Styled",
			Doc:        fmt.Sprintf("Scopes a style under the %q variant.", v),
		})
	}

	members = append(members, &MethodMember{
		Name:       "important",
		Param:      "style",
		ParamType:  "Styled",
		ReturnType: "Styled",
		Doc:        "Marks a style !important.",
	})

	return members
}
