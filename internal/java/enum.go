package java

import (
	"strings"
)

// Enum is a generated Java enum.
type Enum struct {
	Name    string
	Package string
	// Comment is emitted as line comments above the declaration.
	Comment  string
	Includes []string
	Variants []string
	Methods  []Method
}

// Source renders the enum as Java source text.
func (e *Enum) Source() string {
	var sb strings.Builder

	writeHeader(&sb, e.Package, e.Includes, e.Comment)

	sb.WriteString("public enum ")
	sb.WriteString(e.Name)
	sb.WriteString(" {\n")

	if len(e.Variants) == 0 {
		sb.WriteString(indent)
		sb.WriteString(";\n")
	}

	for i, v := range e.Variants {
		sb.WriteString(indent)
		sb.WriteString(v)

		if i == len(e.Variants)-1 {
			sb.WriteString(";\n")
		} else {
			sb.WriteString(",\n")
		}
	}

	writeMethods(&sb, e.Methods)

	sb.WriteString("}\n")

	return sb.String()
}
