// Package gpu holds the WGSL programs of the sprite pipeline and the
// WebGPU objects needed to run them.
package gpu

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/naga"
)

// Embedded WGSL shader sources.

//go:embed shaders/common.wgsl
var commonShaderSource string

//go:embed shaders/fsaa.wgsl
var fsaaShaderSource string

//go:embed shaders/normal.wgsl
var normalShaderSource string

//go:embed shaders/fullbright.wgsl
var fullbrightShaderSource string

// alphaTestMarker is replaced by the discard statement in alpha-tested
// programs.
const alphaTestMarker = "// ALPHA_TEST"

const alphaTestStatement = "if (color.a < 0.5) { discard; }"

// ErrUnknownProgram is returned for a Program outside the known set.
var ErrUnknownProgram = errors.New("gpu: unknown program")

// Program identifies a fragment program.
type Program int

const (
	ProgramFSAA Program = iota
	ProgramNormal
	ProgramFullbright

	programCount
)

// Programs lists every fragment program.
var Programs = []Program{ProgramFSAA, ProgramNormal, ProgramFullbright}

// String returns the program name.
func (p Program) String() string {
	switch p {
	case ProgramFSAA:
		return "fsaa"
	case ProgramNormal:
		return "normal"
	case ProgramFullbright:
		return "fullbright"
	default:
		return fmt.Sprintf("program(%d)", int(p))
	}
}

func (p Program) valid() bool {
	return p >= 0 && p < programCount
}

// Label returns a debug label such as "sprite_fsaa_alphatest".
func Label(p Program, alphaTest bool) string {
	if alphaTest {
		return "sprite_" + p.String() + "_alphatest"
	}
	return "sprite_" + p.String()
}

// Source returns the complete WGSL module for p: the shared vertex stage
// and helpers followed by the fragment entry point, with the alpha test
// spliced in when requested. The module defines vs_main and fs_main.
func Source(p Program, alphaTest bool) (string, error) {
	var frag string
	switch p {
	case ProgramFSAA:
		frag = fsaaShaderSource
	case ProgramNormal:
		frag = normalShaderSource
	case ProgramFullbright:
		frag = fullbrightShaderSource
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownProgram, int(p))
	}
	if alphaTest {
		frag = strings.Replace(frag, alphaTestMarker, alphaTestStatement, 1)
	}
	return commonShaderSource + "\n" + frag, nil
}

// CompileSPIRV compiles the WGSL module for p to SPIR-V words.
func CompileSPIRV(p Program, alphaTest bool) ([]uint32, error) {
	src, err := Source(p, alphaTest)
	if err != nil {
		return nil, err
	}

	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile %s: %w", Label(p, alphaTest), err)
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
