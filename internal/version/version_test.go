package version

import (
	"strings"
	"testing"
)

func TestPlainHasNoEscapes(t *testing.T) {
	v := Plain()
	if strings.Contains(v, "\x1b[") {
		t.Errorf("plain version contains color escapes: %q", v)
	}
	if !strings.HasPrefix(v, "0.1.0") {
		t.Errorf("unexpected version %q", v)
	}
}
