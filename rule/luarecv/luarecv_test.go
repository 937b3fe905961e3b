package luarecv

import (
	"errors"
	"reflect"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/signalmethods/rule"
	"github.com/dshills/signalmethods/signal"
)

func newState(t *testing.T, source string) *lua.LState {
	t.Helper()
	L := lua.NewState()
	t.Cleanup(L.Close)
	if err := L.DoString(source); err != nil {
		t.Fatalf("lua source failed: %v", err)
	}
	return L
}

func TestGlobal_Dispatch(t *testing.T) {
	L := newState(t, `
		seen = nil
		function record(spaceship, asteroid)
			seen = spaceship .. "/" .. tostring(asteroid)
			return "recorded"
		end
	`)

	sig := signal.MustNew([]string{"spaceship", "asteroid"})
	r, err := rule.When(sig, rule.WithRegistry(rule.NewRegistry())).Do(
		Global(L, "record", "spaceship", "asteroid"),
	)
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	defer r.Stop()

	responses, err := sig.SendValues(nil, []any{"ship", "rock"}, nil)
	if err != nil {
		t.Fatalf("SendValues() failed: %v", err)
	}
	if len(responses) != 1 || responses[0].Value != "recorded" {
		t.Errorf("expected the lua return value, got %v", responses)
	}

	if got := L.GetGlobal("seen").String(); got != "ship/rock" {
		t.Errorf("expected ship/rock, got %q", got)
	}
}

func TestGlobal_MissingArgumentArrivesNil(t *testing.T) {
	L := newState(t, `
		function check(spaceship, asteroid)
			return asteroid == nil
		end
	`)

	sig := signal.MustNew([]string{"spaceship", "asteroid"})
	r, err := rule.When(sig, rule.WithRegistry(rule.NewRegistry())).Do(
		Global(L, "check", "spaceship", "asteroid"),
	)
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	defer r.Stop()

	responses, err := sig.SendValues(nil, []any{"ship"}, nil)
	if err != nil {
		t.Fatalf("SendValues() failed: %v", err)
	}
	if responses[0].Value != true {
		t.Error("expected the omitted argument to arrive as nil in lua")
	}
}

func TestGlobal_ErrorPropagates(t *testing.T) {
	L := newState(t, `function explode() error("kaboom") end`)

	sig := signal.MustNew([]string{"spaceship"})
	r, err := rule.When(sig, rule.WithRegistry(rule.NewRegistry())).Do(
		Global(L, "explode"),
	)
	if err != nil {
		t.Fatalf("Do() failed: %v", err)
	}
	defer r.Stop()

	if _, err := sig.Send(nil, nil); err == nil {
		t.Error("expected the lua error to propagate")
	}
}

func TestGlobal_NotAFunction(t *testing.T) {
	L := newState(t, `thing = 42`)

	sig := signal.MustNew([]string{"spaceship"})
	_, err := rule.When(sig, rule.WithRegistry(rule.NewRegistry())).Do(
		Global(L, "thing"),
	)
	if !errors.Is(err, ErrNotAFunction) {
		t.Errorf("expected ErrNotAFunction, got %v", err)
	}
}

func TestBridge_RoundTrip(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"bool", true, true},
		{"string", "hello", "hello"},
		{"int", 42, int64(42)},
		{"float", 1.5, 1.5},
		{"slice", []any{int64(1), "two"}, []any{int64(1), "two"}},
		{"map", map[string]any{"k": "v"}, map[string]any{"k": "v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toGo(toLua(L, tt.in))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("round trip = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestBridge_UserDataCarriesGoValues(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	type opaque struct{ n int }
	v := &opaque{n: 7}

	if got := toGo(toLua(L, v)); got != v {
		t.Errorf("expected the identical Go value back, got %v", got)
	}
}
