// Package luarecv adapts Lua functions into signal receivers.
//
// A Lua receiver is registered with an explicit list of argument names,
// since Lua offers no portable way to read a function's parameter names.
// At dispatch time the named arguments are converted to Lua values and
// passed positionally, in the declared order; an argument the send did
// not supply arrives as nil, which is the natural Lua notion of an
// optional parameter. The function's first return value is converted
// back to Go and reported as the receiver's response.
//
//	L := lua.NewState()
//	defer L.Close()
//	L.DoString(`function explode(spaceship) print("Boom!") end`)
//
//	r, err := rule.When(HasCollided).Do(
//	    luarecv.Global(L, "explode", "spaceship"),
//	)
//
// A lua.LState is not goroutine-safe. Dispatch runs receivers on the
// sending goroutine, so all sends touching one state must come from the
// goroutine that owns it.
package luarecv
