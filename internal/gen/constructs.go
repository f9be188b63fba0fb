package gen

import (
	"fmt"

	"accessor-generator/internal/java"
	"accessor-generator/internal/schema"
)

// selfField is the wrapper field holding the original runtime object.
const selfField = "self"

func objectArg(name, typeName string) []java.Argument {
	return []java.Argument{{Name: name, TypeName: typeName}}
}

// classConstructor stores the original object reference.
func classConstructor(obj *schema.Object) (java.Method, error) {
	body, err := render(constructorTemplate, nil)
	if err != nil {
		return java.Method{}, err
	}

	return java.Method{
		Name:        obj.AccessorName(),
		Constructor: true,
		Arguments:   objectArg(selfField, "Object"),
		Body:        body,
	}, nil
}

// singleClassAccessor reads every schema field of a runtime object into a
// new accessor.
func singleClassAccessor(obj *schema.Object) (java.Method, error) {
	var b bodyBuilder

	b.add(classAccessStartTemplate, map[string]any{"name": obj.DisplayName()})

	for i := range obj.Fields {
		f := &obj.Fields[i]

		b.add(classAccessFieldTemplate, map[string]any{
			"lookup":   lookupFor(f),
			"trueName": f.Name,
			"getter":   getterFor(f.Type),
			"field":    f.DisplayName(),
			"accessor": GenerateAccessor(f.Type, true, obj),
		})
	}

	b.add(classAccessEndTemplate, nil)

	body, err := b.build()
	if err != nil {
		return java.Method{}, err
	}

	return java.Method{
		Name:       "access",
		Static:     true,
		ReturnType: obj.AccessorName(),
		Arguments:  objectArg("object", "Object"),
		Exceptions: reflectiveExceptions,
		Body:       body,
	}, nil
}

// enumCase is one switch arm of the enum accessor.
type enumCase struct {
	Name    string
	Display string
}

// singleEnumAccessor maps a runtime enum constant to the accessor constant
// with the same original name.
func singleEnumAccessor(obj *schema.Object) (java.Method, error) {
	cases := make([]enumCase, 0, len(obj.Variants))
	for i := range obj.Variants {
		v := &obj.Variants[i]
		cases = append(cases, enumCase{Name: v.Name, Display: v.DisplayName()})
	}

	body, err := render(enumAccessTemplate, map[string]any{
		"name":     obj.DisplayName(),
		"variants": cases,
	})
	if err != nil {
		return java.Method{}, err
	}

	return java.Method{
		Name:       "access",
		Static:     true,
		ReturnType: obj.AccessorName(),
		Arguments:  objectArg("object", "Object"),
		Exceptions: enumExceptions,
		Body:       body,
	}, nil
}

// arrayAccessor wraps every entry of an Object[] with the single accessor.
func arrayAccessor(obj *schema.Object) (java.Method, error) {
	body, err := render(arrayAccessTemplate, map[string]any{"name": obj.DisplayName()})
	if err != nil {
		return java.Method{}, err
	}

	return java.Method{
		Name:       "accessArray",
		Static:     true,
		ReturnType: obj.AccessorName() + "[]",
		Arguments:  objectArg("object", "Object[]"),
		Exceptions: reflectiveExceptions,
		Body:       body,
	}, nil
}

// nestedArrayAccessor rebuilds arrays of arrays as untyped arrays. The same
// method is emitted in every class; callers cast the result.
func nestedArrayAccessor() (java.Method, error) {
	body, err := render(nestedArrayAccessTemplate, nil)
	if err != nil {
		return java.Method{}, err
	}

	return java.Method{
		Name:       "accessArrayNested",
		Static:     true,
		ReturnType: "Object",
		Arguments:  objectArg("object", "Object"),
		Exceptions: reflectiveExceptions,
		Body:       body,
	}, nil
}

// clearInnerRefs drops the original reference and recurses into every
// wrapper field that may hold one. Primitive fields and fields typed as an
// included enum are skipped.
func clearInnerRefs(obj *schema.Object, includes []*schema.Object) (java.Method, error) {
	var b bodyBuilder

	b.add(clearStartTemplate, nil)

	for i := range obj.Fields {
		f := &obj.Fields[i]
		if f.Type.IsPrimitive() || isIncludedEnum(obj, f, includes) {
			continue
		}

		data := map[string]any{"field": f.DisplayName()}

		if f.Type.IsNestedArray() || f.Type.IsArray() {
			b.add(clearArrayRefTemplate, data)
		} else {
			b.add(clearSingleRefTemplate, data)
		}
	}

	body, err := b.build()
	if err != nil {
		return java.Method{}, err
	}

	return java.Method{
		Name: "clearInnerRefs",
		Body: body,
	}, nil
}

// isIncludedEnum reports whether f ends in an object that is one of the
// includes and compiles to an enum accessor.
func isIncludedEnum(obj *schema.Object, f *schema.Field, includes []*schema.Object) bool {
	name, ok := f.Type.EndsInObject(obj)
	if !ok {
		return false
	}

	for _, inc := range includes {
		if inc.IsEnum() && (inc.Name == name || inc.DisplayName() == name) {
			return true
		}
	}

	return false
}

// clearInnerRefsArray walks arrays of wrappers and calls clearInnerRefs on
// the leaves, logging failures instead of throwing.
func clearInnerRefsArray() (java.Method, error) {
	body, err := render(clearArrayTemplate, nil)
	if err != nil {
		return java.Method{}, err
	}

	return java.Method{
		Name:       "clearInnerRefsArray",
		Static:     true,
		Visibility: java.Private,
		Arguments:  objectArg("obj", "Object"),
		Body:       body,
	}, nil
}

// fieldSetters returns one best-effort write-back setter per field.
func fieldSetters(obj *schema.Object) ([]java.Method, error) {
	res := make([]java.Method, 0, len(obj.Fields))

	for i := range obj.Fields {
		f := &obj.Fields[i]

		body, err := render(setterTemplate, map[string]any{
			"lookup":   lookupFor(f),
			"trueName": f.Name,
			"field":    f.DisplayName(),
		})
		if err != nil {
			return nil, fmt.Errorf("setter for %s: %w", f.Name, err)
		}

		res = append(res, java.Method{
			Name:      "set_" + f.DisplayName(),
			Arguments: objectArg("value", TargetTypeName(f.Type, obj)),
			Body:      body,
		})
	}

	return res, nil
}
