package version

import "testing"

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		build    string
		expected string
	}{
		{"", "1.2.3"},
		{"abc-12", "1.2.3+abc-12"},
		{"rc.1", "1.2.3+rc.1"},
		{"bad build", "1.2.3"},
		{"semi;colon", "1.2.3"},
	}

	for _, test := range tests {
		if result := formatVersion(1, 2, 3, test.build); result != test.expected {
			t.Errorf("TestFormatVersion: build %q: expected %s, got %s", test.build, test.expected, result)
		}
	}

	if Version() != Version() {
		t.Fatalf("TestFormatVersion: Version is not stable")
	}
}
