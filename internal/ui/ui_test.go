package ui

import (
	"bytes"
	"testing"
)

func TestNormalizeColorMode(t *testing.T) {
	cases := map[string]ColorMode{
		"always":  ColorAlways,
		" NEVER ": ColorNever,
		"":        ColorAuto,
		"rainbow": ColorAuto,
	}
	for in, want := range cases {
		if got := NormalizeColorMode(in); got != want {
			t.Fatalf("NormalizeColorMode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMessagesWithoutColor(t *testing.T) {
	var out, errOut bytes.Buffer
	u := New(&out, &errOut, ColorAlways, true)

	u.Successf("wrote %s\n", "jobs/a.json")
	u.Errorf("boom")

	if out.String() != "wrote jobs/a.json\n" {
		t.Fatalf("stdout = %q", out.String())
	}
	if errOut.String() != "boom\n" {
		t.Fatalf("stderr = %q", errOut.String())
	}
}
