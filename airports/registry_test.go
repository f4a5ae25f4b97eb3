package airports

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		code string
		want string
	}{
		{"JFK", "00610"},
		{"LGA", "00289"},
		{"EWR", "00285"},
		{"TEB", "00890"},
		{"SWF", "00450"},
		{"SYR", "00411"},
		{"YIP", "00467"},
	}

	for _, tt := range tests {
		num, err := r.ChartNumber(tt.code)
		if err != nil {
			t.Fatalf("ChartNumber(%q) returned error: %v", tt.code, err)
		}
		if num != tt.want {
			t.Errorf("ChartNumber(%q) = %q, want %q", tt.code, num, tt.want)
		}
	}

	if r.Len() != len(tests) {
		t.Errorf("Len() = %d, want %d", r.Len(), len(tests))
	}
}

func TestChartNumberCaseInsensitive(t *testing.T) {
	r := DefaultRegistry()
	num, err := r.ChartNumber("jfk")
	if err != nil {
		t.Fatalf("lowercase lookup failed: %v", err)
	}
	if num != "00610" {
		t.Errorf("ChartNumber(\"jfk\") = %q, want \"00610\"", num)
	}
}

func TestChartNumberUnknown(t *testing.T) {
	r := DefaultRegistry()
	_, err := r.ChartNumber("ZZZ")
	if !errors.Is(err, ErrUnknownAirport) {
		t.Errorf("expected ErrUnknownAirport, got %v", err)
	}
}

func TestCodesSorted(t *testing.T) {
	r := DefaultRegistry()
	codes := r.Codes()
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not sorted: %v", codes)
		}
	}
}

func TestLoadRegistry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "airports.toml")
	content := `[airports]
bos = "00058"
JFK = "00610"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry returned error: %v", err)
	}
	if !r.Has("BOS") {
		t.Error("lowercase TOML key not uppercased")
	}
	num, err := r.ChartNumber("BOS")
	if err != nil || num != "00058" {
		t.Errorf("ChartNumber(BOS) = %q, %v", num, err)
	}
	if r.Has("LGA") {
		t.Error("loaded registry should not carry built-in entries")
	}
}

func TestLoadRegistryErrors(t *testing.T) {
	if _, err := LoadRegistry(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	empty := filepath.Join(t.TempDir(), "empty.toml")
	if err := os.WriteFile(empty, []byte("# nothing here\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRegistry(empty); err == nil {
		t.Error("expected error for registry with no airports")
	}
}

func TestAddReplaces(t *testing.T) {
	r := DefaultRegistry()
	r.Add("jfk", "99999")
	num, _ := r.ChartNumber("JFK")
	if num != "99999" {
		t.Errorf("Add did not replace entry, got %q", num)
	}
}
