package fzfcontract

import (
	"errors"
	"os/exec"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input string
		want  Version
	}{
		{"0.43.0", Version{Major: 0, Minor: 43, Patch: 0}},
		{"0.43.1-abc123", Version{Major: 0, Minor: 43, Patch: 1}},
		{"0.42.0 (d6faa58)", Version{Major: 0, Minor: 42, Patch: 0}},
		{"  1.2.3  \n", Version{Major: 1, Minor: 2, Patch: 3}},
		{"10.20.30+build.5", Version{Major: 10, Minor: 20, Patch: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseVersion(tt.input)
			if err != nil {
				t.Fatalf("ParseVersion returned error: %v", err)
			}
			if v != tt.want {
				t.Fatalf("ParseVersion(%q) = %v, want %v", tt.input, v, tt.want)
			}
		})
	}
}

func TestParseVersionInvalid(t *testing.T) {
	tests := []string{
		"",
		"banana",
		"not-a-version",
		"1.2",
		"v1.2.3", // no leading digit
		".1.2.3",
		"99999999999999999999.0.0", // overflows int
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseVersion(input)
			if err == nil {
				t.Fatalf("ParseVersion(%q) succeeded, want error", input)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ParseVersion(%q) error is %T, want *ParseError", input, err)
			}
			if perr.Text != input {
				t.Fatalf("ParseError.Text = %q, want %q", perr.Text, input)
			}
		})
	}
}

func TestMustParseVersionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParseVersion did not panic on invalid input")
		}
	}()
	MustParseVersion("bogus")
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"0.42.0", "0.42.0", 0},
		{"0.42.0", "0.42.1", -1},
		{"0.42.1", "0.42.0", 1},
		{"0.42.9", "0.43.0", -1},
		{"1.0.0", "0.99.99", 1},
		{"0.9.9", "1.0.0", -1},
	}

	for _, tt := range tests {
		a, b := MustParseVersion(tt.a), MustParseVersion(tt.b)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		// Exactly one of <, ==, > holds.
		states := 0
		if a.IsOlderThan(b) {
			states++
		}
		if a == b {
			states++
		}
		if a.IsNewerThan(b) {
			states++
		}
		if states != 1 {
			t.Errorf("ordering of (%s, %s) is not total: %d states hold", tt.a, tt.b, states)
		}
	}
}

func TestVersionIsCompatibleWith(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"0.42.0", "0.42.0", true},
		{"0.42.0", "0.42.9", true}, // patch is ignored
		{"0.42.0", "0.43.0", false},
		{"0.42.0", "1.42.0", false},
		{"1.2.3", "1.2.0", true},
	}

	for _, tt := range tests {
		a, b := MustParseVersion(tt.a), MustParseVersion(tt.b)
		if got := a.IsCompatibleWith(b); got != tt.want {
			t.Errorf("IsCompatibleWith(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVersionString(t *testing.T) {
	v := Version{Major: 0, Minor: 43, Patch: 1}
	if got := v.String(); got != "0.43.1" {
		t.Fatalf("String() = %q, want %q", got, "0.43.1")
	}
}

func TestDetectVersion(t *testing.T) {
	fzfPath, err := exec.LookPath("fzf")
	if err != nil {
		t.Skip("fzf not found in PATH")
	}

	v, err := DetectVersion(fzfPath)
	if err != nil {
		t.Fatalf("DetectVersion returned error: %v", err)
	}
	if (v == Version{}) {
		t.Fatal("detected version is zero")
	}
}
