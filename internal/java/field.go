package java

// Field is a member variable of a class.
type Field struct {
	Name     string
	TypeName string
	// Comment is emitted as line comments above the declaration.
	Comment    string
	Visibility Visibility
}
