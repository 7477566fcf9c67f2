package glbatch

import (
	"errors"
	"fmt"
)

// Sentinel errors. Builder methods return typed errors that match these
// with errors.Is.
var (
	// ErrInvalidParameter reports an argument outside the set the
	// operation accepts. The batch is unchanged when it is returned.
	ErrInvalidParameter = errors.New("glbatch: invalid parameter")

	// ErrInvalidAttributeSpec reports an attribute shorthand that does not
	// parse. The batch is unchanged when it is returned.
	ErrInvalidAttributeSpec = errors.New("glbatch: invalid attribute spec")
)

// ParameterError describes a rejected argument.
type ParameterError struct {
	Op     string // operation, e.g. "BlendFunc"
	Arg    string // argument name, e.g. "sfactor"
	Value  any    // the rejected value
	Reason string // optional detail
}

func (e *ParameterError) Error() string {
	msg := fmt.Sprintf("glbatch: %s: invalid %s %v", e.Op, e.Arg, e.Value)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns ErrInvalidParameter.
func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// AttributeSpecError describes a vertex attribute shorthand that failed to
// parse.
type AttributeSpecError struct {
	Spec   string // the whole shorthand, e.g. "3f32 2u16"
	Token  string // the offending token, empty if the layout as a whole is bad
	Reason string
}

func (e *AttributeSpecError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("glbatch: attribute spec %q: %s", e.Spec, e.Reason)
	}
	return fmt.Sprintf("glbatch: attribute spec %q: token %q: %s", e.Spec, e.Token, e.Reason)
}

// Unwrap returns ErrInvalidAttributeSpec.
func (e *AttributeSpecError) Unwrap() error { return ErrInvalidAttributeSpec }

// ShaderTranslationError reports a WGSL module that could not be turned
// into GLSL for one shader stage.
type ShaderTranslationError struct {
	Stage string // "parse", "vertex" or "fragment"
	Err   error
}

func (e *ShaderTranslationError) Error() string {
	return fmt.Sprintf("glbatch: wgsl %s: %v", e.Stage, e.Err)
}

func (e *ShaderTranslationError) Unwrap() error { return e.Err }

func invalid(op, arg string, value any) error {
	return &ParameterError{Op: op, Arg: arg, Value: value}
}

func invalidf(op, arg string, value any, format string, args ...any) error {
	return &ParameterError{Op: op, Arg: arg, Value: value, Reason: fmt.Sprintf(format, args...)}
}
