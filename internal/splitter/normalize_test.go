package splitter

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no change", "a\n\nb", "a\n\nb"},
		{"collapse triple", "a\n\n\nb", "a\n\nb"},
		{"collapse long run", "a\n\n\n\n\n\nb", "a\n\nb"},
		{"trim leading", "\n\na", "a"},
		{"trim trailing", "a\n\n", "a"},
		{"trim both after collapse", "\n\n\n\na\n\n\n", "a"},
		{"interior spaces kept", "a  b\nc", "a  b\nc"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"a\n\n\nb\n\n\n\nc\n",
		"\n\nhead\n\nbody\n\n",
		"plain",
	}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
