// Package java is a minimal in-memory representation of a Java class or
// enum and its deterministic text serialization.
//
// Nothing here parses or type-checks Java: method bodies are opaque text,
// indented one level deeper than the signature when emitted.
package java
