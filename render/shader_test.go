package render

import "testing"

func TestCompileStripShader(t *testing.T) {
	code, err := CompileStripShader()
	if err != nil {
		t.Fatalf("CompileStripShader() = %v", err)
	}
	if len(code) == 0 {
		t.Fatal("CompileStripShader() returned empty SPIR-V")
	}
	// SPIR-V modules start with the magic number.
	if code[0] != 0x07230203 {
		t.Errorf("SPIR-V magic = %#x, want 0x07230203", code[0])
	}
}
