package langdetect

import (
	"testing"
)

func BenchmarkDetectByExtension(b *testing.B) {
	code := []byte("library ieee;\nuse ieee.std_logic_1164.all;\n")
	b.ResetTimer()
	for range b.N {
		Detect("top.vhd", code)
	}
}

func BenchmarkDetectByPattern(b *testing.B) {
	code := []byte(`entity counter is
  port (
    clk : in std_logic
  );
end entity counter;`)
	b.ResetTimer()
	for range b.N {
		Detect("", code)
	}
}
