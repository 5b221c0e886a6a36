package naming

import "testing"

func TestSequenceName(t *testing.T) {
	tests := []struct {
		name  string
		seq   int
		width int
		ext   string
		want  string
	}{
		{"first", 1, 4, ".jpg", "0001.jpg"},
		{"offset start", 100, 4, ".png", "0100.png"},
		{"upper-cased extension", 7, 4, ".JPG", "0007.jpg"},
		{"zero", 0, 4, ".gif", "0000.gif"},
		{"wider than pad keeps digits", 12345, 4, ".jpg", "12345.jpg"},
		{"narrow pad", 7, 3, ".webp", "007.webp"},
		{"extension without dot", 2, 4, "png", "0002.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SequenceName(tt.seq, tt.width, tt.ext)
			if got != tt.want {
				t.Errorf("SequenceName(%d, %d, %q) = %q, want %q", tt.seq, tt.width, tt.ext, got, tt.want)
			}
		})
	}
}

func TestNormalizeExt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already normalized", ".jpg", ".jpg"},
		{"upper-cased", ".JPEG", ".jpeg"},
		{"mixed case", ".PnG", ".png"},
		{"missing dot", "gif", ".gif"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeExt(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeExt(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
