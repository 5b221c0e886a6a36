package display

import (
	"strings"
	"testing"
)

func TestListingDiff(t *testing.T) {
	before := []string{"a.jpg", "b.png"}
	after := []string{"0001.jpg", "0002.png"}

	diff, err := ListingDiff("/photos", before, after)
	if err != nil {
		t.Fatalf("ListingDiff: %v", err)
	}

	for _, want := range []string{"--- /photos (current)", "+++ /photos (planned)", "-a.jpg", "+0001.jpg", "-b.png", "+0002.png"} {
		if !strings.Contains(diff, want) {
			t.Errorf("diff missing %q:\n%s", want, diff)
		}
	}
}

func TestListingDiff_NoChanges(t *testing.T) {
	names := []string{"0001.jpg", "0002.png"}
	diff, err := ListingDiff("/photos", names, names)
	if err != nil {
		t.Fatalf("ListingDiff: %v", err)
	}
	if diff != "" {
		t.Errorf("identical listings should produce an empty diff, got:\n%s", diff)
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		name string
		word string
		n    int
		want string
	}{
		{"singular", "file", 1, "file"},
		{"plural", "file", 2, "files"},
		{"zero", "file", 0, "files"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Plural(tt.word, tt.n)
			if got != tt.want {
				t.Errorf("Plural(%q, %d) = %q, want %q", tt.word, tt.n, got, tt.want)
			}
		})
	}
}
