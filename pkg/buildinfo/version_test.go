package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	Version, Commit, Date = "v0.3.0", "abc123", "2026-01-02T03:04:05Z"
	t.Cleanup(func() { Version, Commit, Date = "dev", "none", "unknown" })

	want := "version: v0.3.0\ncommit: abc123\nbuilt: 2026-01-02T03:04:05Z"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !strings.HasPrefix(Template(), "{{.Name}} version v0.3.0") {
		t.Errorf("Template() = %q", Template())
	}
}

func TestUserAgent(t *testing.T) {
	if got := UserAgent(); got != "metgallery/dev" {
		t.Errorf("UserAgent() = %q", got)
	}
}
