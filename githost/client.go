// Package githost fetches repository metadata, languages, and a fixed
// allowlist of manifest files from the GitHub REST API, mapping them into a
// readme.SourceRepoInfo.
package githost

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/google/go-github/v57/github"
	"golang.org/x/sync/errgroup"

	"github_readme_generator/readme"
)

// Per-file size ceiling. Larger files are marked oversized and excluded
// rather than truncated, to keep prompts manageable.
const maxFileSizeBytes = 100 * 1024

// fileAllowlist is the fixed set of well-known manifest and readme
// filenames fetched best-effort from every repository, in this order.
var fileAllowlist = []string{
	"README.md",
	"package.json",
	"requirements.txt",
	"Pipfile",
	"pom.xml",
	"build.gradle",
	"composer.json",
	"Gemfile",
	"go.mod",
	"Cargo.toml",
}

const (
	fetchConcurrency = 4
	cacheTTL         = 5 * time.Minute
	cacheMaxCost     = 1 << 20
)

// cachedMeta is the repository metadata kept in the TTL cache; file
// contents are never cached.
type cachedMeta struct {
	info readme.SourceRepoInfo
}

// Client talks to the GitHub REST API.
type Client struct {
	gh    *github.Client
	cache *ristretto.Cache[string, cachedMeta]
}

// authTransport adds the token to each request.
type authTransport struct {
	token string
	base  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(req)
}

// New creates a client. The token is optional; unauthenticated requests
// work against public repositories within the API rate limits.
func New(token string) (*Client, error) {
	hc := &http.Client{Timeout: 30 * time.Second}
	if token != "" {
		hc.Transport = &authTransport{token: token, base: http.DefaultTransport}
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, cachedMeta]{
		NumCounters: 1024,
		MaxCost:     cacheMaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("init metadata cache: %w", err)
	}
	return &Client{gh: github.NewClient(hc), cache: cache}, nil
}

// SetBaseURL points the client at a different API endpoint. Test hook.
func (c *Client) SetBaseURL(raw string) error {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	c.gh.BaseURL = u
	return nil
}

// ParseRepoURL extracts owner and repo from a GitHub repository URL.
// Accepted shapes: https://github.com/owner/repo, with an optional scheme,
// optional .git suffix, and an optional trailing slash.
func ParseRepoURL(raw string) (owner, repo string, err error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimSuffix(s, "/")
	rest, ok := strings.CutPrefix(s, "github.com/")
	if !ok {
		return "", "", ErrInvalidURL
	}
	parts := strings.Split(rest, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidURL
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}

// FetchProject resolves a repository URL into a SourceRepoInfo: metadata
// and languages (cached for a few minutes), then the file allowlist.
// Per-file failures are soft and only exclude that file.
func (c *Client) FetchProject(ctx context.Context, rawURL string) (*readme.SourceRepoInfo, error) {
	owner, repo, err := ParseRepoURL(rawURL)
	if err != nil {
		return nil, err
	}

	info, err := c.fetchMeta(ctx, owner, repo)
	if err != nil {
		return nil, err
	}

	info.FetchedFiles = c.fetchFiles(ctx, owner, repo)
	return info, nil
}

func (c *Client) fetchMeta(ctx context.Context, owner, repo string) (*readme.SourceRepoInfo, error) {
	key := owner + "/" + repo
	if hit, ok := c.cache.Get(key); ok {
		info := hit.info
		return &info, nil
	}

	r, resp, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		if resp != nil {
			if resp.StatusCode == http.StatusNotFound {
				return nil, &NotFoundError{Owner: owner, Repo: repo}
			}
			return nil, &RequestError{Status: resp.StatusCode}
		}
		return nil, fmt.Errorf("fetch repository %s/%s: %w", owner, repo, err)
	}

	info := readme.SourceRepoInfo{
		Name:        r.GetName(),
		Description: r.GetDescription(),
		Topics:      r.Topics,
		LicenseName: r.GetLicense().GetName(),
		HTMLURL:     r.GetHTMLURL(),
		CloneURL:    r.GetCloneURL(),
		OwnerLogin:  r.GetOwner().GetLogin(),
	}
	if info.HTMLURL == "" {
		info.HTMLURL = fmt.Sprintf("https://github.com/%s/%s", owner, repo)
	}
	if info.CloneURL == "" {
		info.CloneURL = fmt.Sprintf("https://github.com/%s/%s.git", owner, repo)
	}
	if info.OwnerLogin == "" {
		info.OwnerLogin = owner
	}

	// Language fetch is best-effort; a failure just leaves the list empty.
	if langs, _, err := c.gh.Repositories.ListLanguages(ctx, owner, repo); err == nil {
		info.Languages = orderLanguages(langs)
	}

	c.cache.SetWithTTL(key, cachedMeta{info: info}, 1, cacheTTL)
	c.cache.Wait()

	out := info
	return &out, nil
}

// orderLanguages sorts by byte count descending, name ascending on ties,
// matching the API's dominant-language-first presentation.
func orderLanguages(byBytes map[string]int) []string {
	names := make([]string, 0, len(byBytes))
	for name := range byBytes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if byBytes[names[i]] != byBytes[names[j]] {
			return byBytes[names[i]] > byBytes[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// fetchFiles retrieves the allowlist with bounded concurrency, keeping
// allowlist order in the result. Only usable files are returned; soft
// failures are dropped.
func (c *Client) fetchFiles(ctx context.Context, owner, repo string) []readme.FetchedFile {
	results := make([]readme.FetchedFile, len(fileAllowlist))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, path := range fileAllowlist {
		i, path := i, path
		g.Go(func() error {
			results[i] = c.fetchFile(gctx, owner, repo, path)
			return nil
		})
	}
	_ = g.Wait()

	files := make([]readme.FetchedFile, 0, len(results))
	for _, f := range results {
		if f.Usable() {
			files = append(files, f)
		}
	}
	return files
}

func (c *Client) fetchFile(ctx context.Context, owner, repo, path string) readme.FetchedFile {
	f := readme.FetchedFile{Path: path}

	fc, _, resp, err := c.gh.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		f.Error = fmt.Sprintf("fetch failed with status %d", status)
		return f
	}
	if fc == nil {
		f.Error = "not a file"
		return f
	}
	if fc.GetSize() > maxFileSizeBytes {
		f.Error = fmt.Sprintf("file too large (%d bytes)", fc.GetSize())
		return f
	}
	content, err := fc.GetContent()
	if err != nil {
		f.Error = "unsupported encoding or no content"
		return f
	}
	f.Content = content
	return f
}
