package argspec

import (
	"reflect"
	"strings"
	"unicode"
)

// TagKey is the struct tag read by FromStruct.
const TagKey = "signal"

// FromStruct derives a Spec from a struct type. Each exported field
// becomes one parameter, named by its `signal` tag when present and by
// the snake_case form of the field name otherwise. A tag of "-" skips
// the field and an ",optional" suffix marks the parameter optional.
// Unexported fields are ignored.
//
//	type Collision struct {
//	    Spaceship *Spaceship
//	    Asteroid  *Asteroid
//	    MakeNoise bool `signal:"make_noise,optional"`
//	}
func FromStruct(t reflect.Type) (Spec, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return Spec{}, ErrNotStruct
	}

	var params []Param
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := snakeCase(field.Name)
		optional := false

		if tag, ok := field.Tag.Lookup(TagKey); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "optional" {
					optional = true
				}
			}
		}

		params = append(params, Param{Name: name, Optional: optional})
	}

	return Spec{params: params}, nil
}

// snakeCase converts an exported Go field name to its snake_case
// argument name: MakeNoise -> make_noise, BufferID -> buffer_id.
func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// Start a new word at an upper rune unless it continues an
			// acronym run that the next rune does not break.
			if i > 0 && (!unicode.IsUpper(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
