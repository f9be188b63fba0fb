package schema

import (
	"errors"
	"fmt"
)

// Error kinds reported while turning a schema file into an Object.
// Every returned error wraps exactly one of them.
var (
	ErrIO        = errors.New("an IO error occurred while reading a source file or directory")
	ErrDecode    = errors.New("an error occurred while deserializing the file")
	ErrAmbiguous = errors.New("object had both fields and variants, the type between enum or class could not be determined")
)

func ioError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}

func decodeError(err error) error {
	return fmt.Errorf("%w: %w", ErrDecode, err)
}

// CheckAmbiguous returns ErrAmbiguous if obj declares both fields and variants.
func CheckAmbiguous(obj *Object) error {
	if obj.IsAmbiguous() {
		return ErrAmbiguous
	}

	return nil
}
