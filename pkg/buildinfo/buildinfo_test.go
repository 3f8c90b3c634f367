package buildinfo

import "testing"

func TestBinaryVersionDefault(t *testing.T) {
	if BinaryVersion == "" {
		t.Error("BinaryVersion should not be empty")
	}
}

func TestVersionNeverEmpty(t *testing.T) {
	if Version() == "" {
		t.Error("Version should always return a value")
	}
}

func TestVersionPrefersLdflags(t *testing.T) {
	orig := BinaryVersion
	defer func() { BinaryVersion = orig }()

	BinaryVersion = "v1.2.3"
	if got := Version(); got != "v1.2.3" {
		t.Errorf("Version() = %q, want ldflags value", got)
	}
}
