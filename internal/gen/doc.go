// Package gen generates Java accessor source from schema objects.
//
// Generation approach uses text/template fragments with named placeholders,
// assembled into a java.Class or java.Enum and serialized deterministically.
//
// Generated constructs:
//   - Constructor storing the original runtime object
//   - access: single object or enum constant, via reflection
//   - accessArray / accessArrayNested: array unwrapping
//   - clearInnerRefs / clearInnerRefsArray: reference cycle breaking
//   - set_<field>: best-effort reflective write-back
package gen
