package render

import (
	"errors"
	"fmt"
)

// ErrShaderCompile matches any *ShaderError.
var ErrShaderCompile = errors.New("render: shader compile failed")

// ShaderError carries the compiler diagnostic for a shader that failed to
// build. Nothing may be rendered after one is reported.
type ShaderError struct {
	Name string
	Err  error
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("compile %s shader: %v", e.Name, e.Err)
}

// Diagnostic is the compiler's own message.
func (e *ShaderError) Diagnostic() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ShaderError) Unwrap() []error { return []error{ErrShaderCompile, e.Err} }
