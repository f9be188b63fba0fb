package java

import (
	"strings"
)

const indent = "\t"

// writeHeader emits the package clause, imports and the leading comment.
func writeHeader(sb *strings.Builder, pkg string, includes []string, comment string) {
	sb.WriteString("package ")
	sb.WriteString(pkg)
	sb.WriteString(";\n")

	if len(includes) > 0 {
		sb.WriteString("\n")

		for _, inc := range includes {
			sb.WriteString("import ")
			sb.WriteString(inc)
			sb.WriteString(";\n")
		}
	}

	sb.WriteString("\n")
	writeComment(sb, "", comment)
}

// writeComment emits one "// " line per line of comment.
func writeComment(sb *strings.Builder, prefix, comment string) {
	if comment == "" {
		return
	}

	for line := range strings.SplitSeq(comment, "\n") {
		sb.WriteString(prefix)
		sb.WriteString("// ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

// writeMethods emits every method preceded by an empty line.
func writeMethods(sb *strings.Builder, methods []Method) {
	for i := range methods {
		m := &methods[i]

		sb.WriteString("\n")
		sb.WriteString(indent)
		sb.WriteString(m.signature())
		sb.WriteString(" {\n")
		writeBody(sb, m.Body)
		sb.WriteString(indent)
		sb.WriteString("}\n")
	}
}

// writeBody indents body two levels. Leading and trailing blank lines are
// dropped; blank lines inside the body stay empty.
func writeBody(sb *strings.Builder, body string) {
	body = strings.Trim(body, "\n")
	if strings.TrimSpace(body) == "" {
		return
	}

	for line := range strings.SplitSeq(body, "\n") {
		line = strings.TrimRight(line, " \t")
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(indent)
			sb.WriteString(line)
		}

		sb.WriteString("\n")
	}
}
