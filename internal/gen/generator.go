package gen

import (
	"fmt"
	"path/filepath"

	"accessor-generator/internal/common"
	"accessor-generator/internal/java"
	"accessor-generator/internal/schema"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// FileExtension is appended to the accessor name to form the file name.
	FileExtension string
	// HeaderComments enables the "autogenerated from" banner.
	HeaderComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		FileExtension:  ".java",
		HeaderComments: true,
	}
}

// Generator turns schema objects into Java accessor sources.
// It holds no state between calls.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Java source file.
type GeneratedFile struct {
	// Filename is the path of the file relative to the output root
	// (e.g., "game/PlayerAccessor.java").
	Filename string
	// Content is the Java source code.
	Content []byte
}

// Input is one object to generate, with everything it depends on.
type Input struct {
	Object *schema.Object
	// Includes are the resolved objects of Object.Includes, in order.
	Includes []*schema.Object
	// SourceName is the schema file name quoted in the header comment.
	SourceName string
	// OutputDir is the directory of the file, relative to the output root.
	OutputDir string
}

// Generate produces the accessor file for one object.
func (g *Generator) Generate(in Input) (*GeneratedFile, error) {
	obj := in.Object
	if obj == nil {
		return nil, fmt.Errorf("generating %s: object is nil", in.SourceName)
	}

	if err := schema.CheckAmbiguous(obj); err != nil {
		return nil, err
	}

	var (
		source string
		err    error
	)

	if obj.IsEnum() {
		source, err = g.enumSource(in)
	} else {
		source, err = g.classSource(in)
	}

	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", obj.AccessorName(), err)
	}

	return &GeneratedFile{
		Filename: filepath.Join(in.OutputDir, obj.AccessorName()+g.config.FileExtension),
		Content:  []byte(source),
	}, nil
}

func (g *Generator) classSource(in Input) (string, error) {
	obj := in.Object

	methods, err := classMethods(obj, in.Includes)
	if err != nil {
		return "", err
	}

	class := java.Class{
		Name:     obj.AccessorName(),
		Package:  obj.Package,
		Comment:  g.header("Class", in),
		Includes: importsOf(in.Includes),
		Fields:   classFields(obj),
		Methods:  methods,
	}

	return class.Source(), nil
}

func (g *Generator) enumSource(in Input) (string, error) {
	obj := in.Object

	access, err := singleEnumAccessor(obj)
	if err != nil {
		return "", err
	}

	array, err := arrayAccessor(obj)
	if err != nil {
		return "", err
	}

	variants := make([]string, 0, len(obj.Variants))
	for i := range obj.Variants {
		variants = append(variants, obj.Variants[i].DisplayName())
	}

	enum := java.Enum{
		Name:     obj.AccessorName(),
		Package:  obj.Package,
		Comment:  g.header("Enum", in),
		Includes: importsOf(in.Includes),
		Variants: variants,
		Methods:  []java.Method{access, array},
	}

	return enum.Source(), nil
}

func (g *Generator) header(kind string, in Input) string {
	if !g.config.HeaderComments {
		return ""
	}

	return fmt.Sprintf("%s autogenerated from %s. DO NOT EDIT.\nOriginal name: %s", kind, in.SourceName, in.Object.Name)
}

// classFields returns the wrapper's fields: the stored original reference
// followed by one public field per schema field.
func classFields(obj *schema.Object) []java.Field {
	fields := make([]java.Field, 0, len(obj.Fields)+1)
	fields = append(fields, java.Field{
		Name:       selfField,
		TypeName:   "Object",
		Visibility: java.Private,
	})

	for i := range obj.Fields {
		f := &obj.Fields[i]

		var comment string
		if f.IsRenamed() {
			comment = "Original name: " + f.Name
		}

		fields = append(fields, java.Field{
			Name:     f.DisplayName(),
			TypeName: TargetTypeName(f.Type, obj),
			Comment:  comment,
		})
	}

	return fields
}

// classMethods returns the methods of a class accessor in emission order.
func classMethods(obj *schema.Object, includes []*schema.Object) ([]java.Method, error) {
	builders := []func() (java.Method, error){
		func() (java.Method, error) { return classConstructor(obj) },
		func() (java.Method, error) { return singleClassAccessor(obj) },
		func() (java.Method, error) { return arrayAccessor(obj) },
		nestedArrayAccessor,
		func() (java.Method, error) { return clearInnerRefs(obj, includes) },
		clearInnerRefsArray,
	}

	methods := make([]java.Method, 0, len(builders)+len(obj.Fields))

	for _, build := range builders {
		m, err := build()
		if err != nil {
			return nil, err
		}

		methods = append(methods, m)
	}

	setters, err := fieldSetters(obj)
	if err != nil {
		return nil, err
	}

	return append(methods, setters...), nil
}

// importsOf returns the fully qualified accessor type of every include.
func importsOf(includes []*schema.Object) []string {
	res := make([]string, 0, len(includes))
	for _, inc := range includes {
		res = append(res, common.Qualify(inc.Package, inc.AccessorName()))
	}

	return res
}
