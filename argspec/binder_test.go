package argspec

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

type collision struct {
	Spaceship string
	Asteroid  string
	MakeNoise bool `signal:"make_noise,optional"`
	Skipped   int  `signal:"-"`
}

func TestStructBinder_Build(t *testing.T) {
	b, err := NewStructBinder(reflect.TypeOf(collision{}))
	if err != nil {
		t.Fatalf("NewStructBinder() failed: %v", err)
	}

	bound, err := b.Spec().Bind(map[string]any{
		"spaceship": "ship",
		"asteroid":  "rock",
		"surplus":   42,
	})
	if err != nil {
		t.Fatalf("Bind() failed: %v", err)
	}

	v, err := b.Build(bound)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	got := v.Interface().(collision)
	if got.Spaceship != "ship" || got.Asteroid != "rock" {
		t.Errorf("unexpected struct %+v", got)
	}
	if got.MakeNoise {
		t.Error("expected absent optional field to keep its zero value")
	}
	if got.Skipped != 0 {
		t.Error("expected skipped field to stay zero")
	}
}

func TestStructBinder_Pointer(t *testing.T) {
	b, err := NewStructBinder(reflect.TypeOf(&collision{}))
	if err != nil {
		t.Fatalf("NewStructBinder() failed: %v", err)
	}

	v, err := b.Build(map[string]any{"spaceship": "ship"})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if v.Kind() != reflect.Pointer {
		t.Fatalf("expected a pointer value, got %s", v.Kind())
	}
	if v.Interface().(*collision).Spaceship != "ship" {
		t.Error("field not set through pointer binder")
	}
}

func TestStructBinder_TypeMismatch(t *testing.T) {
	b, err := NewStructBinder(reflect.TypeOf(collision{}))
	if err != nil {
		t.Fatalf("NewStructBinder() failed: %v", err)
	}

	_, err = b.Build(map[string]any{"spaceship": 42})
	if err == nil {
		t.Fatal("expected an error for a mismatched argument type")
	}
	if !strings.Contains(err.Error(), "spaceship") {
		t.Errorf("expected the argument name in the error, got %v", err)
	}
}

func TestStructBinder_NilValueKeepsZero(t *testing.T) {
	b, err := NewStructBinder(reflect.TypeOf(collision{}))
	if err != nil {
		t.Fatalf("NewStructBinder() failed: %v", err)
	}

	v, err := b.Build(map[string]any{"spaceship": nil})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if v.Interface().(collision).Spaceship != "" {
		t.Error("expected a nil argument to leave the field zero")
	}
}

func TestStructBinder_NotStruct(t *testing.T) {
	_, err := NewStructBinder(reflect.TypeOf("nope"))
	if !errors.Is(err, ErrNotStruct) {
		t.Errorf("expected ErrNotStruct, got %v", err)
	}
}
