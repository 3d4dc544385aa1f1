package tagline

import "testing"

func TestCurrent_ParsesEmbeddedVersion(t *testing.T) {
	r, err := Current()
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if got, want := r.String(), Version(); got != want {
		t.Fatalf("round trip: got %q, want %q", got, want)
	}
}

func TestParseRelease(t *testing.T) {
	cases := []struct {
		in      string
		want    Release
		wantErr bool
	}{
		{in: "0.1.0", want: Release{Minor: 1}},
		{in: "1.2.3-alpha.1", want: Release{Major: 1, Minor: 2, Patch: 3, Pre: "alpha.1"}},
		{in: "2.0.0+build.7", want: Release{Major: 2}},
		{in: "v1.2.3", wantErr: true},
		{in: "1.2", wantErr: true},
		{in: "01.2.3", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseRelease(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseRelease(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseRelease(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRelease(%q): got %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestRelease_Stable(t *testing.T) {
	if (Release{Minor: 1}).Stable() {
		t.Fatalf("0.x must not be stable")
	}
	if (Release{Major: 1, Pre: "rc.1"}).Stable() {
		t.Fatalf("pre-release must not be stable")
	}
	if !(Release{Major: 1}).Stable() {
		t.Fatalf("1.0.0 must be stable")
	}
}
