package styledecl

import "strings"

// CSSNode is one node in a style-rule object graph. Three kinds exist:
// CSSDecl (property: value), CSSRule (selector + children) and CSSAtRule
// (conditional/grouping construct + children).
type CSSNode interface {
	renderCSS(b *strings.Builder)
}

// CSSDecl is a single property: value declaration.
type CSSDecl struct {
	Property string
	Value    string
}

// CSSRule is a selector with nested nodes.
type CSSRule struct {
	Selector string
	Nodes    []CSSNode
}

// CSSAtRule is an at-rule with parameters and nested nodes.
type CSSAtRule struct {
	Name   string // without the leading "@"
	Params string
	Nodes  []CSSNode
}

func (d *CSSDecl) renderCSS(b *strings.Builder) {
	b.WriteString(d.Property)
	b.WriteString(":")
	b.WriteString(d.Value)
	b.WriteString(";")
}

func (r *CSSRule) renderCSS(b *strings.Builder) {
	b.WriteString(r.Selector)
	b.WriteString(" {")
	for _, n := range r.Nodes {
		n.renderCSS(b)
	}
	b.WriteString("}")
}

func (a *CSSAtRule) renderCSS(b *strings.Builder) {
	b.WriteString("@")
	b.WriteString(a.Name)
	if a.Params != "" {
		b.WriteString(" ")
		b.WriteString(a.Params)
	}
	b.WriteString(" {")
	for _, n := range a.Nodes {
		n.renderCSS(b)
	}
	b.WriteString("}")
}

// RenderCSS renders a node graph to canonical compact CSS text.
// Pretty-printing is the documentation formatter's job.
func RenderCSS(nodes ...CSSNode) string {
	var b strings.Builder
	for _, n := range nodes {
		n.renderCSS(&b)
	}
	return b.String()
}

// Decl is a convenience constructor for a declaration node.
func Decl(property, value string) *CSSDecl {
	return &CSSDecl{Property: property, Value: value}
}

// Rule is a convenience constructor for a rule node.
func Rule(selector string, nodes ...CSSNode) *CSSRule {
	return &CSSRule{Selector: selector, Nodes: nodes}
}

// AtRule is a convenience constructor for an at-rule node.
func AtRule(name, params string, nodes ...CSSNode) *CSSAtRule {
	return &CSSAtRule{Name: name, Params: params, Nodes: nodes}
}
