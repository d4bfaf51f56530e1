package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	cberrors "github.com/dbmrq/cookbook/internal/errors"
)

// GitHubRepo is where cookbook releases are published.
const GitHubRepo = "dbmrq/cookbook"

// ReleaseAPIURL is a format string taking the owner/name of a repository.
const ReleaseAPIURL = "https://api.github.com/repos/%s/releases/latest"

// Release holds the fields of a GitHub release that version --check prints.
type Release struct {
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	PublishedAt string `json:"published_at"`
	HTMLURL     string `json:"html_url"`
}

// Version is TagName without its "v" prefix.
func (r *Release) Version() string {
	return strings.TrimPrefix(r.TagName, "v")
}

// Checker queries the latest release.
type Checker struct {
	HTTPClient *http.Client
	URL        string
	UserAgent  string
}

// NewChecker returns a Checker for GitHubRepo with a 10 second timeout.
func NewChecker() *Checker {
	return &Checker{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		URL:        fmt.Sprintf(ReleaseAPIURL, GitHubRepo),
		UserAgent:  "cookbook-version-checker",
	}
}

// LatestRelease fetches and decodes the latest release.
func (c *Checker) LatestRelease(ctx context.Context) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, cberrors.Wrap(err, cberrors.ErrNetwork, "invalid release URL")
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, cberrors.Wrap(err, cberrors.ErrNetwork, "release lookup failed").WithDetails("url", c.URL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("release lookup returned %s", resp.Status)
		return nil, cberrors.New(cberrors.ErrNetwork, msg).WithDetails("url", c.URL)
	}

	rel := &Release{}
	if err := json.NewDecoder(resp.Body).Decode(rel); err != nil {
		return nil, cberrors.Wrap(err, cberrors.ErrParse, "unreadable release response")
	}
	return rel, nil
}

// CheckForUpdate returns the latest release when it is newer than current.
// A nil release with a nil error means current is up to date.
func (c *Checker) CheckForUpdate(ctx context.Context, current string) (*Release, error) {
	rel, err := c.LatestRelease(ctx)
	if err != nil || CompareVersions(rel.Version(), current) <= 0 {
		return nil, err
	}
	return rel, nil
}
