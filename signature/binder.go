package signature

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/ggoodman/smartinvoker-go/argument"
	"github.com/ggoodman/smartinvoker-go/internal/logctx"
	"github.com/ggoodman/smartinvoker-go/nativetype"
	"github.com/google/uuid"
)

// Binder applies a Signature to incoming call arguments. It is safe for
// concurrent use once constructed.
type Binder struct {
	sig            *Signature
	validator      argument.Validator
	creator        argument.Creator
	log            *slog.Logger
	allowUnknown   bool
	skipValidation bool
}

// Option configures a Binder.
type Option func(*Binder)

// WithValidator sets the validator context used to run rules. Without one
// rules are not evaluated.
func WithValidator(v argument.Validator) Option {
	return func(b *Binder) { b.validator = v }
}

// WithCreator sets the callback building object-typed arguments from raw
// values that are not yet instances of the declared class.
func WithCreator(c argument.Creator) Option {
	return func(b *Binder) { b.creator = c }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Binder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithAllowUnknown controls whether unknown named arguments are dropped
// (true) or rejected with *UnknownArgumentError (false, default).
func WithAllowUnknown(allow bool) Option {
	return func(b *Binder) { b.allowUnknown = allow }
}

// WithConfig applies a Config loaded e.g. by ConfigFromEnv.
func WithConfig(cfg Config) Option {
	return func(b *Binder) {
		b.allowUnknown = cfg.AllowUnknownArguments
		b.skipValidation = cfg.SkipValidation
	}
}

// NewBinder constructs a Binder for sig.
func NewBinder(sig *Signature, opts ...Option) *Binder {
	b := &Binder{sig: sig, log: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	b.log = slog.New(logctx.Handler{Handler: b.log.Handler()})
	return b
}

// Signature returns the bound signature.
func (b *Binder) Signature() *Signature { return b.sig }

// Bind decodes raw as a JSON object of named arguments and binds it. Empty
// input and JSON null are treated as an empty object. Numbers are kept exact
// so integers stay integers.
func (b *Binder) Bind(ctx context.Context, raw json.RawMessage) ([]argument.Value, error) {
	args := map[string]any{}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		if err := dec.Decode(&args); err != nil {
			return nil, fmt.Errorf("%s: invalid arguments: %w", b.sig.method, err)
		}
	}
	return b.BindMap(ctx, args)
}

// BindMap binds named arguments. The result is ordered by parameter position
// and has one entry per parameter.
func (b *Binder) BindMap(ctx context.Context, args map[string]any) ([]argument.Value, error) {
	ctx = b.callContext(ctx)

	if !b.allowUnknown {
		var unknown []string
		for k := range args {
			if _, ok := b.sig.index[k]; !ok {
				unknown = append(unknown, k)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			err := &UnknownArgumentError{Method: b.sig.method, Name: unknown[0]}
			b.log.DebugContext(ctx, "bind.fail", slog.String("err", err.Error()))
			return nil, err
		}
	}

	out := make([]argument.Value, len(b.sig.params))
	for i, d := range b.sig.params {
		raw, present := args[d.Name()]
		v, err := b.bindOne(ctx, d, raw, present)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	b.log.DebugContext(ctx, "bind.ok", slog.Int("args", len(out)))
	return out, nil
}

// BindPositional binds arguments given in parameter order, as produced by
// command line binders. Trailing parameters may be omitted.
func (b *Binder) BindPositional(ctx context.Context, args []any) ([]argument.Value, error) {
	ctx = b.callContext(ctx)
	if len(args) > len(b.sig.params) {
		err := &ArityError{Method: b.sig.method, Max: len(b.sig.params), Got: len(args)}
		b.log.DebugContext(ctx, "bind.fail", slog.String("err", err.Error()))
		return nil, err
	}
	out := make([]argument.Value, len(b.sig.params))
	for i, d := range b.sig.params {
		var raw any
		present := i < len(args)
		if present {
			raw = args[i]
		}
		v, err := b.bindOne(ctx, d, raw, present)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	b.log.DebugContext(ctx, "bind.ok", slog.Int("args", len(out)))
	return out, nil
}

func (b *Binder) callContext(ctx context.Context) context.Context {
	return logctx.WithCallData(ctx, &logctx.CallData{CallID: uuid.NewString(), Method: b.sig.method})
}

func (b *Binder) bindOne(ctx context.Context, d *argument.Descriptor, raw any, present bool) (argument.Value, error) {
	if !present {
		if def, ok := d.Default(); ok {
			return def, nil
		}
		if d.Optional() {
			return argument.Null(), nil
		}
		err := &MissingArgumentError{Param: d}
		b.fail(ctx, d, err)
		return argument.Value{}, err
	}

	v, err := b.create(d, argument.FromAny(raw))
	if err != nil {
		b.fail(ctx, d, err)
		return argument.Value{}, err
	}
	var validator argument.Validator
	if !b.skipValidation {
		validator = b.validator
	}
	v, err = d.Filter(v, validator)
	if err != nil {
		b.fail(ctx, d, err)
		return argument.Value{}, err
	}
	return v, nil
}

// create runs the creator over object-typed values before filtering so raw
// payloads can be turned into instances.
func (b *Binder) create(d *argument.Descriptor, v argument.Value) (argument.Value, error) {
	if b.creator == nil || d.Type() != nativetype.Object {
		return v, nil
	}
	if !d.Multiple() {
		return b.createOne(d, v)
	}
	if v.Kind() != argument.KindArray {
		return v, nil
	}
	out := make([]argument.Value, v.Len())
	for i, e := range v.Elems() {
		c, err := b.createOne(d, e)
		if err != nil {
			return argument.Value{}, err
		}
		out[i] = c
	}
	return argument.List(out...), nil
}

func (b *Binder) createOne(d *argument.Descriptor, v argument.Value) (argument.Value, error) {
	if v.Kind() == argument.KindObject && v.Object().InstanceOf(d.Class()) {
		return v, nil
	}
	c, err := b.creator(d.Class(), v)
	if err != nil {
		return argument.Value{}, &CreateError{Param: d, Err: err}
	}
	return c, nil
}

func (b *Binder) fail(ctx context.Context, d *argument.Descriptor, err error) {
	ctx = logctx.WithParamData(ctx, &logctx.ParamData{Name: d.Name(), Position: d.Position(), Type: d.Type()})
	b.log.DebugContext(ctx, "bind.fail", slog.String("err", err.Error()))
}
