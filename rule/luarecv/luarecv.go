package luarecv

import (
	"errors"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/signalmethods/argspec"
	"github.com/dshills/signalmethods/rule"
)

// ErrNotAFunction is returned when a named global is not a Lua function.
var ErrNotAFunction = errors.New("luarecv: global is not a function")

// Func adapts a Lua function into a receiver. The named arguments are
// passed positionally in the declared order; every parameter is
// optional on the Lua side, arriving as nil when the send omitted it.
func Func(L *lua.LState, fn *lua.LFunction, names ...string) rule.Receiver {
	params := make([]argspec.Param, len(names))
	for i, name := range names {
		params[i] = argspec.Param{Name: name, Optional: true}
	}

	invoke := func(bound map[string]any) (any, error) {
		L.Push(fn)
		for _, name := range names {
			L.Push(toLua(L, bound[name]))
		}
		if err := L.PCall(len(names), 1, nil); err != nil {
			return nil, err
		}
		ret := L.Get(-1)
		L.Pop(1)
		return toGo(ret), nil
	}

	return rule.NewReceiver("lua function", argspec.Of(params...), invoke)
}

// Global adapts the Lua global with the given name into a receiver. The
// lookup happens at registration time; a missing or non-function global
// is a deferred error surfaced by Registrar.Do.
func Global(L *lua.LState, global string, names ...string) rule.Receiver {
	fn, ok := L.GetGlobal(global).(*lua.LFunction)
	if !ok {
		return rule.InvalidReceiver(global, ErrNotAFunction)
	}
	return Func(L, fn, names...).WithName(global)
}
