package signal

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dshills/signalmethods/broadcast"
)

// capture connects a receiver that records the delivered argument sets.
func capture(t *testing.T, s *Signal) *[]Args {
	t.Helper()
	var seen []Args
	s.Broadcaster().Connect(func(args broadcast.Args) (any, error) {
		seen = append(seen, args)
		return nil, nil
	}, nil, "")
	return &seen
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		wantErr error
	}{
		{"no names", nil, ErrNoNames},
		{"duplicate", []string{"a", "a"}, ErrDuplicateName},
		{"reserved sender", []string{"sender"}, ErrReservedName},
		{"reserved signal", []string{"a", "signal"}, ErrReservedName},
		{"ok", []string{"spaceship", "asteroid"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.names)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New(%v) error = %v, want %v", tt.names, err, tt.wantErr)
			}
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustNew to panic on invalid names")
		}
	}()
	MustNew(nil)
}

func TestSignal_NamesImmutable(t *testing.T) {
	s := MustNew([]string{"spaceship", "asteroid"})

	names := s.Names()
	names[0] = "mutated"

	if s.Names()[0] != "spaceship" {
		t.Error("mutating the returned slice changed the signal's names")
	}
}

func TestSignal_SendValuesPositionalMapping(t *testing.T) {
	s := MustNew([]string{"spaceship", "asteroid"})
	seen := capture(t, s)

	if _, err := s.SendValues("tester", []any{"ship", "rock"}, nil); err != nil {
		t.Fatalf("SendValues() failed: %v", err)
	}

	got := (*seen)[0]
	if got["spaceship"] != "ship" || got["asteroid"] != "rock" {
		t.Errorf("positional values were not mapped to declared names: %v", got)
	}
	if got[broadcast.SenderKey] != "tester" {
		t.Errorf("expected sender to be injected, got %v", got[broadcast.SenderKey])
	}
	if got[broadcast.SignalKey] != s {
		t.Error("expected the signal itself under the signal key")
	}
}

func TestSignal_SendValuesPartial(t *testing.T) {
	s := MustNew([]string{"spaceship", "asteroid"})
	seen := capture(t, s)

	if _, err := s.SendValues(nil, []any{"ship"}, nil); err != nil {
		t.Fatalf("SendValues() failed: %v", err)
	}

	got := (*seen)[0]
	if got["spaceship"] != "ship" {
		t.Errorf("expected spaceship=ship, got %v", got)
	}
	if _, ok := got["asteroid"]; ok {
		t.Error("expected the unsupplied name to be omitted, not defaulted")
	}
}

func TestSignal_SendZeroArguments(t *testing.T) {
	s := MustNew([]string{"spaceship", "asteroid"})
	seen := capture(t, s)

	if _, err := s.Send(nil, nil); err != nil {
		t.Fatalf("Send() with no arguments failed: %v", err)
	}
	got := (*seen)[0]
	if _, ok := got["spaceship"]; ok {
		t.Errorf("expected an empty dispatch set, got %v", got)
	}
}

func TestSignal_SendValuesTooManyPositional(t *testing.T) {
	s := MustNew([]string{"spaceship"})

	_, err := s.SendValues(nil, []any{"a", "b"}, nil)
	if !errors.Is(err, ErrTooManyArgs) {
		t.Fatalf("expected ErrTooManyArgs, got %v", err)
	}

	var tooMany *TooManyArgsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("expected TooManyArgsError, got %T", err)
	}
	if tooMany.Declared != 1 || tooMany.Got != 2 {
		t.Errorf("unexpected counts in %v", tooMany)
	}
}

func TestSignal_SendValuesDuplicateName(t *testing.T) {
	s := MustNew([]string{"spaceship", "asteroid"})

	_, err := s.SendValues(nil, []any{"ship"}, Args{"spaceship": "other"})
	if !errors.Is(err, ErrDuplicateArg) {
		t.Fatalf("expected ErrDuplicateArg, got %v", err)
	}

	var dup *DuplicateArgError
	if !errors.As(err, &dup) || dup.Name != "spaceship" {
		t.Errorf("expected DuplicateArgError for spaceship, got %v", err)
	}
}

func TestSignal_SendSurplusKeywordsPassThrough(t *testing.T) {
	s := MustNew([]string{"spaceship"})
	seen := capture(t, s)

	if _, err := s.SendValues(nil, []any{"ship"}, Args{"aliens": false}); err != nil {
		t.Fatalf("SendValues() failed: %v", err)
	}
	if (*seen)[0]["aliens"] != false {
		t.Error("expected undeclared keyword arguments to pass through")
	}
}

func TestSignal_ConfigurationErrorSendsNothing(t *testing.T) {
	s := MustNew([]string{"spaceship"})
	seen := capture(t, s)

	s.SendValues(nil, []any{"a", "b"}, nil)
	if len(*seen) != 0 {
		t.Error("a configuration error must not reach the broadcaster")
	}
}

func TestSignal_ReceiverErrorPropagates(t *testing.T) {
	s := MustNew([]string{"spaceship"})

	boom := errors.New("boom")
	s.Broadcaster().Connect(func(args broadcast.Args) (any, error) {
		return nil, boom
	}, nil, "")

	_, err := s.Send(nil, Args{"spaceship": "ship"})
	if !errors.Is(err, boom) {
		t.Errorf("expected the receiver's error, got %v", err)
	}
}

func TestSignal_ResponsesOrdered(t *testing.T) {
	s := MustNew([]string{"spaceship"})

	for _, v := range []string{"one", "two"} {
		v := v
		s.Broadcaster().Connect(func(args broadcast.Args) (any, error) {
			return v, nil
		}, nil, "")
	}

	responses, err := s.Send(nil, nil)
	if err != nil {
		t.Fatalf("Send() failed: %v", err)
	}
	if len(responses) != 2 || responses[0].Value != "one" || responses[1].Value != "two" {
		t.Errorf("expected ordered responses [one two], got %v", responses)
	}
}

func TestWithBroadcaster(t *testing.T) {
	d := broadcast.NewDispatcher()
	s := MustNew([]string{"spaceship"}, WithBroadcaster(d))

	if s.Broadcaster() != broadcast.Broadcaster(d) {
		t.Error("expected the supplied broadcaster to be used")
	}
}

func TestSignal_Declares(t *testing.T) {
	s := MustNew([]string{"spaceship", "asteroid"})
	if !s.Declares("asteroid") || s.Declares("comet") {
		t.Error("Declares() mismatch")
	}
	if !reflect.DeepEqual(s.Names(), []string{"spaceship", "asteroid"}) {
		t.Errorf("Names() = %v", s.Names())
	}
}
