package renderer

import "fmt"

// ShaderError reports a shader stage that failed to compile or a program
// that failed to link. Err carries the driver's diagnostic text.
type ShaderError struct {
	Stage string // "vertex", "fragment" or "link"
	Err   error
}

func (e *ShaderError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("shader program link failed: %v", e.Err)
	}
	return fmt.Sprintf("%s shader compile failed: %v", e.Stage, e.Err)
}

func (e *ShaderError) Unwrap() error { return e.Err }

// newProgram compiles and links the two stages. It stops at the first
// failure, deleting whatever it created, so a broken stage is never linked.
func newProgram(b Backend, vertSrc, fragSrc string) (uint32, error) {
	vert, err := b.CompileVertexShader(vertSrc)
	if err != nil {
		return 0, &ShaderError{Stage: "vertex", Err: err}
	}
	frag, err := b.CompileFragmentShader(fragSrc)
	if err != nil {
		b.DeleteShader(vert)
		return 0, &ShaderError{Stage: "fragment", Err: err}
	}

	prog, err := b.LinkProgram(vert, frag)
	b.DeleteShader(vert)
	b.DeleteShader(frag)
	if err != nil {
		return 0, &ShaderError{Stage: "link", Err: err}
	}
	return prog, nil
}
