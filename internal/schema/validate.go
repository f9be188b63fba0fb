package schema

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	javaIdentRe   = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	javaPackageRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)
)

// IsJavaIdent reports whether s can be used as a Java identifier.
func IsJavaIdent(s string) bool {
	return javaIdentRe.MatchString(s)
}

// structValidator is shared; validator caches struct metadata per instance.
var structValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report schema key names rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	_ = v.RegisterValidation("javaident", func(fl validator.FieldLevel) bool {
		return IsJavaIdent(fl.Field().String())
	})
	_ = v.RegisterValidation("javapackage", func(fl validator.FieldLevel) bool {
		return javaPackageRe.MatchString(fl.Field().String())
	})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		f, _ := sl.Current().Interface().(Field)
		if !f.Type.Kind.IsValid() {
			sl.ReportError(f.Type, "type", "Type", "required", "")
		}
	}, Field{})

	return v
}

// Validate checks the structural constraints of a decoded object.
// It does not check ambiguity; see CheckAmbiguous.
func Validate(obj *Object) error {
	if obj == nil {
		return errors.New("object is nil")
	}

	err := structValidator.Struct(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, describe(fe))
	}

	return errors.New(strings.Join(parts, "; "))
}

// describe renders one validation failure using the schema key path,
// e.g. "fields[1].name: required".
func describe(fe validator.FieldError) string {
	path := fe.Namespace()
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}

	switch fe.Tag() {
	case "required":
		return path + ": required"
	case "javaident":
		return fmt.Sprintf("%s: %q is not a valid Java identifier", path, fe.Value())
	case "javapackage":
		return fmt.Sprintf("%s: %q is not a valid Java package name", path, fe.Value())
	default:
		return fmt.Sprintf("%s: failed %q check", path, fe.Tag())
	}
}
