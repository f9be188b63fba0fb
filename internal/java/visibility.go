package java

// Visibility is a Java access modifier. The zero value is Public.
type Visibility int

const (
	Public Visibility = iota
	Private
)

func (v Visibility) String() string {
	switch v {
	case Private:
		return "private"
	default:
		return "public"
	}
}
