package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// reflectiveExceptions is the throws clause of methods that read fields
// reflectively.
var reflectiveExceptions = []string{
	"NoSuchFieldException",
	"SecurityException",
	"IllegalArgumentException",
	"IllegalAccessException",
}

// enumExceptions is the throws clause of the enum access method.
var enumExceptions = []string{
	"SecurityException",
	"IllegalArgumentException",
}

func newTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Option("missingkey=error").Parse(text))
}

var constructorTemplate = newTemplate("constructor", `
this.self = self;
`)

var classAccessStartTemplate = newTemplate("class_access_start", `
if (object == null) return null;

var accessor = new {{.name}}Accessor(object);
var clazz = object.getClass();
if (clazz.isEnum()) throw new RuntimeException("Failed to access {{.name}}: Expected object to be object but got enum.");
`)

var classAccessFieldTemplate = newTemplate("class_access_field", `
{
	var field = clazz.{{.lookup}}("{{.trueName}}");
	field.setAccessible(true);
	var value = field.{{.getter}}(object);
	accessor.{{.field}} = {{.accessor}};
}
`)

var classAccessEndTemplate = newTemplate("class_access_end", `
return accessor;
`)

var enumAccessTemplate = newTemplate("enum_access", `
if (object == null) return null;

var clazz = object.getClass();

if (!clazz.isEnum()) throw new RuntimeException("{{.name}} was supposed to be an enum but it is not!");

var variant = ((Enum<?>) object).name();

switch (variant) {
{{- range .variants}}
	case "{{.Name}}": return {{$.name}}Accessor.{{.Display}};
{{- end}}
	default:
		var variants = clazz.getEnumConstants();
		System.out.println("{{.name}} variants:");

		for (var c : variants) {
			var constant = (Enum<?>)c;
			System.out.println("    - '" + constant.name() + "': '" + constant.toString() + "'");
		}

		throw new RuntimeException("{{.name}}Accessor has an unrecognized variant: '" + variant + "'");
}
`)

var arrayAccessTemplate = newTemplate("array_access", `
if (object == null) return null;

var entries = new java.util.ArrayList<>();

for (var entry : object) {
	entries.add({{.name}}Accessor.access(entry));
}

return entries.toArray(new {{.name}}Accessor[0]);
`)

var nestedArrayAccessTemplate = newTemplate("nested_array_access", `
if (object == null) return null;

if (!(object instanceof Object[]))
	return object;

var objArray = (Object[]) object;

var entries = new java.util.ArrayList<>();

for (var entry : objArray) {
	entries.add(accessArrayNested(entry));
}

return entries.toArray();
`)

var clearStartTemplate = newTemplate("clear_start", `
this.self = null;
`)

var clearSingleRefTemplate = newTemplate("clear_single_ref", `
if (this.{{.field}} != null) this.{{.field}}.clearInnerRefs();
`)

var clearArrayRefTemplate = newTemplate("clear_array_ref", `
clearInnerRefsArray(this.{{.field}});
`)

var clearArrayTemplate = newTemplate("clear_array", `
if (obj == null) return;
if (obj.getClass().isArray()) {
	var array = (Object[])obj;

	for (var entry : array) {
		clearInnerRefsArray(entry);
	}
} else {
	try {
		var method = obj.getClass().getMethod("clearInnerRefs");
		method.invoke(obj);
	} catch (Exception e) {
		System.out.println("Error in clearRefsArray:");
		e.printStackTrace();
	}
}
`)

var setterTemplate = newTemplate("setter", `
try {
	var clazz = this.self.getClass();
	var field = clazz.{{.lookup}}("{{.trueName}}");
	field.setAccessible(true);
	field.set(this.self, value);

	this.{{.field}} = value;
} catch (Exception e) {
	System.out.println("Error setting field '{{.field}}':");
	e.printStackTrace();
}
`)

// bodyBuilder concatenates rendered fragments, separated by a blank line.
// The first execution error sticks and stops further rendering.
type bodyBuilder struct {
	parts []string
	err   error
}

func (b *bodyBuilder) add(tmpl *template.Template, data map[string]any) {
	if b.err != nil {
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		b.err = fmt.Errorf("executing %s template: %w", tmpl.Name(), err)
		return
	}

	b.parts = append(b.parts, strings.Trim(buf.String(), "\n"))
}

func (b *bodyBuilder) build() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	return strings.Join(b.parts, "\n\n"), nil
}

// render executes a single template into a method body.
func render(tmpl *template.Template, data map[string]any) (string, error) {
	var b bodyBuilder
	b.add(tmpl, data)

	return b.build()
}
