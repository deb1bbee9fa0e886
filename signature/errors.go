package signature

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ggoodman/smartinvoker-go/argument"
	"github.com/ggoodman/smartinvoker-go/internal/jsonrpc"
)

// MissingArgumentError indicates a required parameter received no value.
type MissingArgumentError struct {
	Param *argument.Descriptor
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument %s", e.Param)
}

// UnknownArgumentError indicates a named argument matching no parameter.
type UnknownArgumentError struct {
	Method string
	Name   string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("%s: unknown argument %q", e.Method, e.Name)
}

// CreateError wraps a failure of the configured creator while turning a raw
// payload into an instance of the parameter's class.
type CreateError struct {
	Param *argument.Descriptor
	Err   error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("argument %s: cannot create %s: %v", e.Param, e.Param.Class(), e.Err)
}

func (e *CreateError) Unwrap() error { return e.Err }

// ArityError indicates more positional arguments than parameters.
type ArityError struct {
	Method string
	Max    int
	Got    int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: expected at most %d arguments, got %d", e.Method, e.Max, e.Got)
}

// RPCErrorCode maps a Bind error onto a JSON-RPC 2.0 error code: argument
// errors are invalid params, malformed argument JSON is a parse error and
// anything else is internal.
func RPCErrorCode(err error) int {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		missing   *MissingArgumentError
		unknown   *UnknownArgumentError
		arity     *ArityError
		create    *CreateError
	)
	switch {
	case err == nil:
		return 0
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return int(jsonrpc.ErrorCodeParseError)
	case errors.Is(err, argument.ErrTypeCasting),
		errors.Is(err, argument.ErrValidation),
		errors.As(err, &missing),
		errors.As(err, &unknown),
		errors.As(err, &arity),
		errors.As(err, &create),
		errors.As(err, &typeErr):
		return int(jsonrpc.ErrorCodeInvalidParams)
	}
	return int(jsonrpc.ErrorCodeInternalError)
}
