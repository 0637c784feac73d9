package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Name", "Game"},
		{"Location", "/Applications"},
	}
	got := Format(rows)
	if len(got) != 2 {
		t.Fatalf("got %d lines", len(got))
	}
	if got[0] != "Name      Game" {
		t.Fatalf("line 0 = %q", got[0])
	}
	if got[1] != "Location  /Applications" {
		t.Fatalf("line 1 = %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil); got != nil {
		t.Fatalf("Format(nil) = %v, want nil", got)
	}
}
