package shader

import (
	"errors"
	"strings"
	"testing"
)

func TestCompileBuiltins(t *testing.T) {
	for _, name := range Builtins {
		t.Run(name, func(t *testing.T) {
			src, err := Embedded().Load(name)
			if err != nil {
				t.Fatal(err)
			}
			words, err := Compile(src)
			if err != nil {
				if strings.Contains(err.Error(), "not yet implemented") || strings.Contains(err.Error(), "not supported") {
					t.Skipf("Skipping: naga feature not yet implemented: %v", err)
				}
				t.Fatalf("Compile() error = %v", err)
			}
			if words[0] != spirvMagic {
				t.Errorf("magic = 0x%08X, want 0x%08X", words[0], spirvMagic)
			}
			if err := Validate(src); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  Source
	}{
		{"empty", Source{Name: "empty"}},
		{"garbage", Source{Name: "garbage", Code: "this is not wgsl {"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.src)
			if !errors.Is(err, ErrCompile) {
				t.Fatalf("Validate() = %v, want ErrCompile", err)
			}
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Fatalf("error %T is not a *CompileError", err)
			}
			if ce.Name != tt.src.Name {
				t.Errorf("Name = %q, want %q", ce.Name, tt.src.Name)
			}
		})
	}
}
