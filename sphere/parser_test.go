package sphere

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", ""},
		{"E", "E"},
		{"GE", "EG"},
		{"ZZGE", "EGZZ"},
		{" EP ", "EP"},
		{"[EO]", "EO"},
		{"ELPXGOTZ", "EGLOPTXZ"},
	}
	for _, test := range tests {
		set, err := Parse(test.text)
		if err != nil {
			t.Errorf("could not parse %q: %v", test.text, err)
		} else if set.String() != test.want {
			t.Errorf("parse %q: expected %q, got %q", test.text, test.want, set.String())
		}
	}
}

func TestParseUnknown(t *testing.T) {
	for _, text := range []string{"A", "EPa", "E P", "ε"} {
		if _, err := Parse(text); err == nil {
			t.Errorf("parse %q: expected an error", text)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, text := range []string{"", "E", "EGLOPTXZ", "EEEEGGOZ"} {
		set, err := Parse(text)
		if err != nil {
			t.Fatalf("could not parse %q: %v", text, err)
		}
		again, err := Parse(set.String())
		if err != nil {
			t.Fatalf("could not reparse %q: %v", set.String(), err)
		}
		if again != set {
			t.Errorf("round trip of %q: got %q", text, again.String())
		}
	}
}
