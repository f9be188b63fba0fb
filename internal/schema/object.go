package schema

// Object is one schema document: the description of a class or an enum to
// generate an accessor for.
//
// An object with variants is compiled as an enum accessor, one with fields
// (or neither) as a class accessor. Having both is ambiguous and rejected.
type Object struct {
	Name     string    `yaml:"name" validate:"required,javaident" jsonschema:"description=Original identifier of the runtime class or enum"`
	Rename   string    `yaml:"rename,omitempty" validate:"omitempty,javaident" jsonschema:"description=Identifier used for the generated accessor"`
	Package  string    `yaml:"package" validate:"required,javapackage" jsonschema:"description=Java package of the generated accessor"`
	Includes []string  `yaml:"includes,omitempty" validate:"dive,required" jsonschema:"description=Schema files whose accessors are imported (relative to this file)"`
	Variants []Variant `yaml:"variants,omitempty" validate:"dive" jsonschema:"description=Enum variants; non-empty makes this an enum accessor"`
	Fields   []Field   `yaml:"fields,omitempty" validate:"dive" jsonschema:"description=Class fields; non-empty makes this a class accessor"`
}

// DisplayName returns the rename if set, the original name otherwise.
func (o *Object) DisplayName() string {
	return displayName(o.Name, o.Rename)
}

// AccessorName returns the name of the generated accessor type.
func (o *Object) AccessorName() string {
	return o.DisplayName() + "Accessor"
}

// IsEnum reports whether the object compiles to an enum accessor.
func (o *Object) IsEnum() bool {
	return len(o.Variants) > 0
}

// IsAmbiguous reports whether the object declares both fields and variants.
func (o *Object) IsAmbiguous() bool {
	return len(o.Fields) > 0 && len(o.Variants) > 0
}

// Field is a field of a class schema.
type Field struct {
	Name   string `yaml:"name" validate:"required,javaident"`
	Rename string `yaml:"rename,omitempty" validate:"omitempty,javaident"`
	Type   Type   `yaml:"type"`
	// Hierarchy selects the inherited field lookup (getField) instead of
	// the declaring-class-only one (getDeclaredField).
	Hierarchy bool `yaml:"hierarchy,omitempty" jsonschema:"description=Look the field up through the superclass chain"`
}

// DisplayName returns the rename if set, the original name otherwise.
func (f *Field) DisplayName() string {
	return displayName(f.Name, f.Rename)
}

// IsRenamed reports whether the field is exposed under another name.
func (f *Field) IsRenamed() bool {
	return f.Rename != ""
}

// Variant is a constant of an enum schema.
type Variant struct {
	Name   string `yaml:"name" validate:"required,javaident"`
	Rename string `yaml:"rename,omitempty" validate:"omitempty,javaident"`
	// Aliases are kept in the model but not used by code generation yet.
	Aliases []string `yaml:"aliases,omitempty"`
}

// DisplayName returns the rename if set, the original name otherwise.
func (v *Variant) DisplayName() string {
	return displayName(v.Name, v.Rename)
}

func displayName(name, rename string) string {
	if rename != "" {
		return rename
	}

	return name
}
