package argspec

import (
	"fmt"
	"reflect"
	"strings"
)

// StructBinder binds argument sets into values of one struct type. It
// derives the type's Spec once and reuses the field layout for every
// build.
type StructBinder struct {
	typ     reflect.Type // the struct type, pointers stripped
	pointer bool         // the original type was a pointer
	spec    Spec
	fields  map[string]int // param name -> field index
}

// NewStructBinder creates a binder for t, which must be a struct type or
// a pointer to one. The parameter naming rules are those of FromStruct.
func NewStructBinder(t reflect.Type) (*StructBinder, error) {
	orig := t
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, ErrNotStruct
	}

	spec, err := FromStruct(t)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]int, len(spec.params))
	names := spec.Names()
	next := 0
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if tag, ok := field.Tag.Lookup(TagKey); ok && strings.Split(tag, ",")[0] == "-" {
			continue
		}
		fields[names[next]] = i
		next++
	}

	return &StructBinder{
		typ:     t,
		pointer: orig.Kind() == reflect.Pointer,
		spec:    spec,
		fields:  fields,
	}, nil
}

// Spec returns the derived parameter spec.
func (b *StructBinder) Spec() Spec {
	return b.spec
}

// Build fills a fresh struct value from an already-bound argument set
// (the output of Spec().Bind). The returned value has the binder's
// original type: a pointer when the binder was built from one.
func (b *StructBinder) Build(bound map[string]any) (reflect.Value, error) {
	ptr := reflect.New(b.typ)
	elem := ptr.Elem()

	for name, idx := range b.fields {
		v, ok := bound[name]
		if !ok {
			continue
		}
		field := elem.Field(idx)
		if v == nil {
			continue
		}
		rv := reflect.ValueOf(v)
		if !rv.Type().AssignableTo(field.Type()) {
			return reflect.Value{}, fmt.Errorf(
				"argument %s: cannot use %s as %s", name, rv.Type(), field.Type())
		}
		field.Set(rv)
	}

	if b.pointer {
		return ptr, nil
	}
	return elem, nil
}
