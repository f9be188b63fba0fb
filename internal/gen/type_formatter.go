package gen

import (
	"accessor-generator/internal/schema"
)

// javaScalars maps primitive kinds to their Java spelling.
var javaScalars = map[schema.Kind]string{
	schema.KindBool:   "boolean",
	schema.KindI32:    "int",
	schema.KindI64:    "long",
	schema.KindU8:     "byte",
	schema.KindI16:    "short",
	schema.KindF32:    "float",
	schema.KindF64:    "double",
	schema.KindString: "String",
}

// getters maps primitive kinds to the typed java.lang.reflect.Field getter.
// Everything else is read with the generic get.
var getters = map[schema.Kind]string{
	schema.KindBool: "getBoolean",
	schema.KindI32:  "getInt",
	schema.KindI64:  "getLong",
	schema.KindU8:   "getByte",
	schema.KindI16:  "getShort",
	schema.KindF32:  "getFloat",
	schema.KindF64:  "getDouble",
}

// TargetTypeName returns the Java type used for a field of type t declared
// on enclosing, e.g. "int", "FooAccessor" or "FooAccessor[][]".
// A self type uses the display name of enclosing, so a renamed object
// refers to the accessor that is actually generated for it.
func TargetTypeName(t schema.Type, enclosing *schema.Object) string {
	switch t.Kind {
	case schema.KindObject:
		return t.Name + "Accessor"
	case schema.KindSelf:
		return enclosing.AccessorName()
	case schema.KindArray:
		return TargetTypeName(*t.Elem, enclosing) + "[]"
	default:
		return javaScalars[t.Kind]
	}
}

// GenerateAccessor returns the Java expression that turns the reflected
// value (a local named "value") into the wrapper field type.
//
// Object-terminated types delegate to the static access methods of the
// referenced accessor, which already return the right type. Anything else
// is a plain cast; at the root it is applied to value.
func GenerateAccessor(t schema.Type, root bool, enclosing *schema.Object) string {
	name, isObject := t.EndsInObject(enclosing)

	if isObject {
		if t.IsNestedArray() {
			return "(" + TargetTypeName(t, enclosing) + ")" + name + "Accessor.accessArrayNested(value)"
		}

		if t.IsArray() {
			return "(" + TargetTypeName(t, enclosing) + ")" + name + "Accessor.accessArray((Object[])value)"
		}
	}

	var cast string

	switch t.Kind {
	case schema.KindObject, schema.KindSelf:
		cast = name + "Accessor.access(value)"
	case schema.KindArray:
		cast = GenerateAccessor(*t.Elem, false, enclosing) + "[]"
	default:
		cast = TargetTypeName(t, enclosing)
	}

	if root && !isObject {
		return "(" + cast + ")value"
	}

	return cast
}

// getterFor returns the reflective getter used to read a field of type t.
func getterFor(t schema.Type) string {
	if g, ok := getters[t.Kind]; ok {
		return g
	}

	return "get"
}

// lookupFor returns the reflective lookup for a field: inherited fields
// go through getField, the rest through getDeclaredField.
func lookupFor(f *schema.Field) string {
	if f.Hierarchy {
		return "getField"
	}

	return "getDeclaredField"
}
