package common

// Qualify joins a dotted Java package and a type name. Returns name alone
// if pkg is empty.
func Qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}

	return pkg + "." + name
}
