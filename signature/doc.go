// Package signature models the parameter list of one invocable method as an
// ordered set of argument descriptors and binds incoming call arguments to
// it.
//
// A Signature is built once (New or FromStruct) and is immutable afterwards.
// It can describe itself as a JSON Schema object for tool listings and
// similar discovery surfaces. A Binder applies a Signature to raw arguments
// arriving by name (JSON objects, decoded maps) or by position (CLI style),
// filling defaults, rejecting missing and unknown arguments, and running
// every value through argument filtering with the configured validator and
// creator.
//
//	sig, err := signature.FromStruct("search", SearchArgs{})
//	b := signature.NewBinder(sig,
//	    signature.WithValidator(registry),
//	    signature.WithLogger(log),
//	)
//	args, err := b.Bind(ctx, req.Arguments) // []argument.Value, ordered by position
//
// Binder behaviour can also be loaded from the environment with
// ConfigFromEnv:
//
//	SMARTINVOKER_ALLOW_UNKNOWN_ARGS   accept (and drop) unknown named arguments
//	SMARTINVOKER_SKIP_VALIDATION      coerce only; do not run validation rules
package signature
