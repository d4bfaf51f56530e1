package version

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cberrors "github.com/dbmrq/cookbook/internal/errors"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")

	if info.Version != "1.0.0" || info.Commit != "abc123" || info.Date != "2024-01-01" {
		t.Errorf("unexpected info: %+v", info)
	}
	if info.GoVer == "" || info.OS == "" || info.Arch == "" {
		t.Error("runtime fields should be filled in")
	}
}

func TestInfoString(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")

	if s := info.String(); s != "cookbook 1.0.0 (commit: abc123, built: 2024-01-01)" {
		t.Errorf("String() = %q", s)
	}
	if !strings.Contains(info.FullString(), "OS/Arch:") {
		t.Errorf("FullString() = %q", info.FullString())
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.1", "1.0.0", 1},
		{"1.0.0", "1.1.0", -1},
		{"v2.0.0", "1.9.9", 1},
		{"1.2.0-rc1", "1.2.0", 0},
		{"1.10.0", "1.9.0", 1},
	}
	for _, tt := range tests {
		if got := CompareVersions(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func newReleaseServer(t *testing.T, status int, body string) *Checker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "cookbook-version-checker" {
			t.Errorf("User-Agent = %q", ua)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c := NewChecker()
	c.URL = srv.URL
	return c
}

func TestChecker_LatestRelease(t *testing.T) {
	c := newReleaseServer(t, http.StatusOK, `{"tag_name":"v1.2.0","name":"Spring","html_url":"https://example.com/r"}`)

	rel, err := c.LatestRelease(context.Background())
	if err != nil {
		t.Fatalf("LatestRelease: %v", err)
	}
	if rel.Version() != "1.2.0" || rel.Name != "Spring" {
		t.Errorf("release = %+v", rel)
	}
}

func TestChecker_CheckForUpdate(t *testing.T) {
	c := newReleaseServer(t, http.StatusOK, `{"tag_name":"v1.2.0"}`)

	rel, err := c.CheckForUpdate(context.Background(), "1.1.0")
	if err != nil || rel == nil {
		t.Fatalf("expected an update, got %v, %v", rel, err)
	}

	rel, err = c.CheckForUpdate(context.Background(), "v1.2.0")
	if err != nil || rel != nil {
		t.Errorf("expected no update, got %v, %v", rel, err)
	}
}

func TestChecker_Errors(t *testing.T) {
	c := newReleaseServer(t, http.StatusNotFound, "missing")
	if _, err := c.LatestRelease(context.Background()); !errors.Is(err, cberrors.ErrNetwork) {
		t.Errorf("404 error = %v, want ErrNetwork", err)
	}

	c = newReleaseServer(t, http.StatusOK, "not json")
	if _, err := c.LatestRelease(context.Background()); !errors.Is(err, cberrors.ErrParse) {
		t.Errorf("bad body error = %v, want ErrParse", err)
	}
}
