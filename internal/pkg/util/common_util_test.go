package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Hello, World!", "hello-world"},
		{"  Spaced  Out  ", "spaced-out"},
		{"Go 1.24 Released", "go-1-24-released"},
		{"你好世界", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
