package schema

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind tags the variant held by a Type.
type Kind int

const (
	_ Kind = iota // skip zero value, a Type with a zero Kind is invalid

	KindBool
	KindI32
	KindI64
	KindU8
	KindI16
	KindF32
	KindF64
	KindString
	KindSelf
	KindObject
	KindArray

	// KindTotal is the number of kinds defined, including the invalid zero value.
	KindTotal = int(iota)
)

// keywords holds the schema spelling of every kind that has no parameters.
var keywords = map[Kind]string{
	KindBool:   "bool",
	KindI32:    "i32",
	KindI64:    "i64",
	KindU8:     "u8",
	KindI16:    "i16",
	KindF32:    "f32",
	KindF64:    "f64",
	KindString: "string",
	KindSelf:   "self",
}

// kindByKeyword is the reverse of keywords.
var kindByKeyword = func() map[string]Kind {
	res := make(map[string]Kind, len(keywords))
	for k, kw := range keywords {
		res[kw] = k
	}

	return res
}()

// IsScalar reports whether k is one of the eight primitive or string kinds.
func (k Kind) IsScalar() bool {
	switch k {
	default:
		return false
	case KindBool, KindI32, KindI64, KindU8, KindI16, KindF32, KindF64, KindString:
		return true
	}
}

// IsValid reports whether k is a defined kind.
func (k Kind) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// Keyword returns the schema spelling of a parameterless kind, or "" for
// Object and Array.
func (k Kind) Keyword() string {
	return keywords[k]
}
