package core

import (
	"strings"
	"testing"
)

func TestDetectTextData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		text bool
	}{
		{"empty", []byte{}, true},
		{"plain text", []byte("ABCD-1234\nEFGH-5678\n"), true},
		{"utf8 text", []byte("код восстановления"), true},
		{"null bytes", []byte{'a', 0, 'b'}, false},
		{"invalid utf8", []byte{0xff, 0xfe, 0xfd}, false},
	}

	for _, tt := range tests {
		if got := DetectTextData(tt.data); got != tt.text {
			t.Errorf("%s: DetectTextData = %v, want %v", tt.name, got, tt.text)
		}
	}
}

func TestSameContent(t *testing.T) {
	if !SameContent([]byte("abc"), []byte("abc")) {
		t.Error("Identical content should match")
	}
	if SameContent([]byte("abc"), []byte("abd")) {
		t.Error("Different content should not match")
	}
}

func TestRenderDiff(t *testing.T) {
	local := []byte("AAAA-1111\nBBBB-2222\nCCCC-3333\n")
	decrypted := []byte("AAAA-1111\nDDDD-4444\nCCCC-3333\n")

	diff := RenderDiff(local, decrypted)

	if !strings.Contains(diff, "-BBBB-2222") {
		t.Errorf("Diff should mark removed line, got:\n%s", diff)
	}
	if !strings.Contains(diff, "+DDDD-4444") {
		t.Errorf("Diff should mark added line, got:\n%s", diff)
	}
	if !strings.Contains(diff, " AAAA-1111") {
		t.Errorf("Diff should keep unchanged line, got:\n%s", diff)
	}
}
