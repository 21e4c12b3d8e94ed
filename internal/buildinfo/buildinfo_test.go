package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	for _, tc := range []struct {
		version, commit, want string
	}{
		{"v1.2.0", "abc", "v1.2.0"},
		{"dev", "0123456789abcdef", "0123456789ab"},
		{"dev", "abc", "abc"},
		{"", "unknown", "dev"},
	} {
		Version, Commit = tc.version, tc.commit
		if got := Short(); got != tc.want {
			t.Fatalf("Short(%q,%q)=%q, want %q", tc.version, tc.commit, got, tc.want)
		}
	}
}

func TestFull(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v1", "abc", "2026-01-02"
	if got, want := Full(), "meenle v1 (commit abc, built 2026-01-02)"; got != want {
		t.Fatalf("Full()=%q, want %q", got, want)
	}
}
