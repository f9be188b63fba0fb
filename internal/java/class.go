package java

import (
	"strings"
)

// ClassType selects between a class and an interface declaration.
type ClassType int

const (
	KindClass ClassType = iota
	KindInterface
)

func (c ClassType) keyword() string {
	if c == KindInterface {
		return "interface"
	}

	return "class"
}

// Class is a generated Java class.
type Class struct {
	Name    string
	Type    ClassType
	Package string
	// Comment is emitted as line comments above the declaration.
	Comment  string
	Includes []string
	Fields   []Field
	Methods  []Method
}

// Source renders the class as Java source text.
func (c *Class) Source() string {
	var sb strings.Builder

	writeHeader(&sb, c.Package, c.Includes, c.Comment)

	sb.WriteString("public ")
	sb.WriteString(c.Type.keyword())
	sb.WriteString(" ")
	sb.WriteString(c.Name)
	sb.WriteString(" {\n")

	for _, f := range c.Fields {
		writeComment(&sb, indent, f.Comment)
		sb.WriteString(indent)
		sb.WriteString(f.Visibility.String())
		sb.WriteString(" ")
		sb.WriteString(f.TypeName)
		sb.WriteString(" ")
		sb.WriteString(f.Name)
		sb.WriteString(";\n")
	}

	writeMethods(&sb, c.Methods)

	sb.WriteString("}\n")

	return sb.String()
}
