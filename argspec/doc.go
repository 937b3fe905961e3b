// Package argspec describes which named arguments a receiver accepts and
// narrows a full argument set down to that subset.
//
// A Spec is an ordered list of parameter names, each either required or
// optional (optionally with a default value). Binding a full argument set
// against a Spec produces only the declared names; surplus names are
// dropped and a required name that is absent yields a MissingArgError.
// A catch-all Spec disables filtering and passes the whole set through,
// reserved keys included.
//
// Specs are built explicitly with New and Of, or derived from a struct
// type with FromStruct, which maps exported fields to snake_case argument
// names and honors `signal:"name[,optional]"` tags. Go offers no way to
// read the parameter names of an arbitrary function, so the struct form
// is the reflective path and the explicit form covers everything else.
package argspec
