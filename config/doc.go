// Package config declares signals and rules from a JSON document.
//
// The document names signals with their ordered argument lists and wires
// rules to receivers by name. Receiver names are resolved against a
// Receivers registry populated by the host program; the config layer
// never constructs receivers itself.
//
//	{
//	  "signals": {
//	    "has_collided": {"args": ["spaceship", "asteroid"]}
//	  },
//	  "rules": [
//	    {"signal": "has_collided", "id": "collision",
//	     "receivers": ["explode", "lose_life"]}
//	  ]
//	}
//
// Load builds every declared signal, starts every declared rule and
// returns a Set owning both. Stopping the Set stops its rules; the
// signals stay usable. Rules declared with an id deduplicate exactly
// like rule.WithID: a later declaration for the same signal and id
// supersedes the earlier one.
//
// Config declares wiring, nothing else: no runtime state is ever written
// back. Marshal renders the declarations for inspection or persistence
// of the wiring itself.
package config
