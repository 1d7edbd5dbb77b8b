package styledecl

import (
	"strconv"
	"strings"
)

// The declaration file is built as a small AST (type aliases, object
// types, members, unions) and rendered by a dedicated printer, so the
// output shape can be tested independently of rule resolution.

// TypeNode is a type expression in the declaration file.
type TypeNode interface {
	printType(b *strings.Builder, indent int)
}

// Member is one entry of an object type.
type Member interface {
	printMember(b *strings.Builder, indent int)
}

// TypeRef names an existing type, e.g. "Property<Styled>".
type TypeRef struct {
	Name string
}

// LiteralUnion is a union of string literals.
type LiteralUnion struct {
	Literals []string
}

// ObjectType is an inline object type with ordered members.
type ObjectType struct {
	Members []Member
}

// PropertyMember is a documented property declaration.
type PropertyMember struct {
	Key  string
	Type TypeNode
	Doc  string // empty for empty-bodied declarations
}

// MethodMember is a callable modifier: Name(style: Styled): Styled.
type MethodMember struct {
	Name       string
	Param      string
	ParamType  string
	ReturnType string
	Doc        string
}

// IndexMember is an open-ended fallback entry: [key: string]: Type.
type IndexMember struct {
	KeyName string
	KeyType string
	Type    TypeNode
}

// TypeAlias is a top-level "type Name = ...;" declaration.
type TypeAlias struct {
	Name string
	Type TypeNode
	Doc  string
}

// File is the whole declaration document.
type File struct {
	Header  string
	Aliases []TypeAlias
}

func (t *TypeRef) printType(b *strings.Builder, _ int) {
	b.WriteString(t.Name)
}

func (u *LiteralUnion) printType(b *strings.Builder, _ int) {
	if len(u.Literals) == 0 {
		b.WriteString("never")
		return
	}
	for i, lit := range u.Literals {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(strconv.Quote(lit))
	}
}

func (o *ObjectType) printType(b *strings.Builder, indent int) {
	if len(o.Members) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	for _, m := range o.Members {
		m.printMember(b, indent+1)
	}
	writeIndent(b, indent)
	b.WriteString("}")
}

func (p *PropertyMember) printMember(b *strings.Builder, indent int) {
	writeDoc(b, p.Doc, indent)
	writeIndent(b, indent)
	b.WriteString(propertyKey(p.Key))
	b.WriteString(": ")
	p.Type.printType(b, indent)
	b.WriteString(";\n")
}

func (m *MethodMember) printMember(b *strings.Builder, indent int) {
	writeDoc(b, m.Doc, indent)
	writeIndent(b, indent)
	b.WriteString(m.Name)
	b.WriteString("(")
	b.WriteString(m.Param)
	b.WriteString(": ")
	b.WriteString(m.ParamType)
	b.WriteString("): ")
	b.WriteString(m.ReturnType)
	b.WriteString(";\n")
}

func (ix *IndexMember) printMember(b *strings.Builder, indent int) {
	writeIndent(b, indent)
	b.WriteString("[")
	b.WriteString(ix.KeyName)
	b.WriteString(": ")
	b.WriteString(ix.KeyType)
	b.WriteString("]: ")
	ix.Type.printType(b, indent)
	b.WriteString(";\n")
}

// PrintFile renders the declaration document. Output is fully
// determined by the AST: identical input produces identical bytes.
func PrintFile(f *File) string {
	var b strings.Builder

	if f.Header != "" {
		b.WriteString(f.Header)
		if !strings.HasSuffix(f.Header, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	for i, alias := range f.Aliases {
		if i > 0 {
			b.WriteString("\n")
		}
		writeDoc(&b, alias.Doc, 0)
		b.WriteString("type ")
		b.WriteString(alias.Name)
		b.WriteString(" = ")
		alias.Type.printType(&b, 0)
		b.WriteString(";\n")
	}

	return b.String()
}

func writeIndent(b *strings.Builder, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
}

// writeDoc emits a /** */ block. Comment terminators inside the text
// are escaped so a CSS annotation cannot close the doc block early.
func writeDoc(b *strings.Builder, doc string, indent int) {
	if doc == "" {
		return
	}
	doc = strings.ReplaceAll(doc, "*/", `*\/`)

	writeIndent(b, indent)
	b.WriteString("/**\n")
	for _, line := range strings.Split(strings.TrimRight(doc, "\n"), "\n") {
		writeIndent(b, indent)
		b.WriteString(" *")
		if line != "" {
			b.WriteString(" ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}
	writeIndent(b, indent)
	b.WriteString(" */\n")
}

// identStart reports whether the rune can start an identifier token.
func identStart(r byte) bool {
	return r == '_' || r == '$' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// propertyKey quotes keys that are not valid identifier tokens.
func propertyKey(key string) string {
	if key == "" {
		return `""`
	}
	if !identStart(key[0]) {
		return strconv.Quote(key)
	}
	for i := 1; i < len(key); i++ {
		c := key[i]
		if !identStart(c) && (c < '0' || c > '9') {
			return strconv.Quote(key)
		}
	}
	return key
}
