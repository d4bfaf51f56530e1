// Package version describes the running build and compares it with the
// newest published release.
package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Info identifies a cookbook build.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	GoVer   string `json:"go_version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

// NewInfo combines the linker-set build values with the Go runtime's.
func NewInfo(version, commit, date string) *Info {
	return &Info{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
}

// String is the one-line form used by --version.
func (i *Info) String() string {
	return "cookbook " + i.Version + " (commit: " + i.Commit + ", built: " + i.Date + ")"
}

// FullString lists every field on its own line.
func (i *Info) FullString() string {
	rows := [][2]string{
		{"Commit:", i.Commit},
		{"Built:", i.Date},
		{"Go:", i.GoVer},
		{"OS/Arch:", i.OS + "/" + i.Arch},
	}
	var b strings.Builder
	b.WriteString("cookbook " + i.Version)
	for _, r := range rows {
		fmt.Fprintf(&b, "\n  %-9s %s", r[0], r[1])
	}
	return b.String()
}

// CompareVersions orders two "major.minor.patch" strings, returning -1, 0
// or 1. A leading "v" and any pre-release suffix are ignored.
func CompareVersions(a, b string) int {
	x, y := parseVersion(a), parseVersion(b)
	for i := range x {
		switch {
		case x[i] > y[i]:
			return 1
		case x[i] < y[i]:
			return -1
		}
	}
	return 0
}

func parseVersion(v string) [3]int {
	var out [3]int
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	v, _, _ = strings.Cut(v, "-")
	for i, part := range strings.SplitN(v, ".", 3) {
		out[i], _ = strconv.Atoi(part)
	}
	return out
}
