package java

import (
	"strings"
)

// Method is a method or constructor.
type Method struct {
	Name      string
	Arguments []Argument
	// ReturnType defaults to void. Ignored for constructors.
	ReturnType  string
	Constructor bool
	Visibility  Visibility
	Static      bool
	Exceptions  []string
	// Body is the unindented statement text.
	Body string
}

// Argument is a method parameter.
type Argument struct {
	Name     string
	TypeName string
}

// signature renders everything up to (not including) the opening brace.
func (m *Method) signature() string {
	var sb strings.Builder

	sb.WriteString(m.Visibility.String())

	if m.Static {
		sb.WriteString(" static")
	}

	if !m.Constructor {
		ret := m.ReturnType
		if ret == "" {
			ret = "void"
		}

		sb.WriteString(" ")
		sb.WriteString(ret)
	}

	sb.WriteString(" ")
	sb.WriteString(m.Name)
	sb.WriteString("(")

	for i, arg := range m.Arguments {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(arg.TypeName)
		sb.WriteString(" ")
		sb.WriteString(arg.Name)
	}

	sb.WriteString(")")

	if len(m.Exceptions) > 0 {
		sb.WriteString(" throws ")
		sb.WriteString(strings.Join(m.Exceptions, ", "))
	}

	return sb.String()
}
