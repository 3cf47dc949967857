package textutil

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Bor Listrik", 20, "Bor Listrik"},
		{"Bor Listrik", 5, "Bor …"},
		{"Bor", 0, ""},
		{"🔧 Bor", 4, "🔧 …"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestPad(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("5", 3); got != "  5" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadRight("🧱", 3); Width(got) != 3 {
		t.Errorf("PadRight emoji width = %d, want 3", Width(got))
	}
}

func TestTable(t *testing.T) {
	out := Table(
		[]Column{{Title: "ID"}, {Title: "Nama", MaxWidth: 6}, {Title: "Jumlah", Right: true}},
		[][]string{
			{"A-1", "Bor Listrik", "5"},
			{"M-10", "Semen", "120"},
		},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if lines[0] != "ID    Nama    Jumlah" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "A-1   Bor L…       5" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "M-10  Semen      120" {
		t.Errorf("row 2 = %q", lines[2])
	}
}
