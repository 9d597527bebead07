package render

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// stripShaderWGSL is the shader pair for drawing strip vertices: a
// pass-through vertex stage over the [tristrip.Vertex] layout
// (position at location 0, premultiplied color at location 1) and a
// fragment stage emitting the interpolated color.
const stripShaderWGSL = `
struct VertexInput {
    @location(0) position: vec2<f32>,
    @location(1) color: vec4<f32>,
};

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
};

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.position = vec4<f32>(in.position, 0.0, 1.0);
    out.color = in.color;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return in.color;
}
`

// CompileStripShader compiles the bundled strip shader from WGSL to
// SPIR-V uint32 words, ready for shader module creation.
func CompileStripShader() ([]uint32, error) {
	return compileToSPIRV(stripShaderWGSL)
}

// compileToSPIRV compiles WGSL source to a SPIR-V uint32 slice.
func compileToSPIRV(wgslSource string) ([]uint32, error) {
	// Compile WGSL to SPIR-V bytes
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// Convert bytes to uint32 slice for SPIR-V
	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}

// NewShaderModule creates a HAL shader module from SPIR-V code.
// Hosts building their own strip pipeline call this with the output of
// [CompileStripShader].
func NewShaderModule(device hal.Device, label string, spirvCode []uint32) (hal.ShaderModule, error) {
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
}
