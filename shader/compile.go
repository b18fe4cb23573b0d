package shader

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

// ErrCompile matches every *CompileError.
var ErrCompile = errors.New("shader: compile failed")

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// CompileError reports a program that naga rejected.
type CompileError struct {
	Name string
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader: compile %s: %v", e.Name, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Is reports whether target is ErrCompile.
func (e *CompileError) Is(target error) bool { return target == ErrCompile }

// Compile translates src to SPIR-V words.
func Compile(src Source) ([]uint32, error) {
	if src.Code == "" {
		return nil, &CompileError{Name: src.Name, Err: errors.New("empty source")}
	}
	spirv, err := naga.Compile(src.Code)
	if err != nil {
		return nil, &CompileError{Name: src.Name, Err: err}
	}
	if len(spirv) < 4 || len(spirv)%4 != 0 {
		return nil, &CompileError{Name: src.Name, Err: fmt.Errorf("SPIR-V length %d", len(spirv))}
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	if words[0] != spirvMagic {
		return nil, &CompileError{Name: src.Name, Err: fmt.Errorf("bad SPIR-V magic 0x%08X", words[0])}
	}
	return words, nil
}

// Validate reports whether src compiles.
func Validate(src Source) error {
	_, err := Compile(src)
	return err
}
