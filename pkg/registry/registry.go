// Package registry talks to the upstream gitignore template collection.
// It lists the available template types from the repository contents
// endpoint and fetches individual template bodies from the raw content
// host. Built-in synthetic templates resolve locally without a request.
package registry

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/arthur-debert/igno/pkg/errors"
	"github.com/arthur-debert/igno/pkg/logging"
)

// Upstream endpoints for the github/gitignore collection
const (
	DefaultTypesURL   = "https://api.github.com/repos/github/gitignore/contents"
	DefaultRawBaseURL = "https://raw.githubusercontent.com/github/gitignore/master/"

	// TemplateSuffix is the file suffix that marks a listing entry as a template
	TemplateSuffix = ".gitignore"
)

// Template is one named block of ignore-pattern text, either fetched
// from upstream or resolved from a built-in flag.
type Template struct {
	Name    string
	Content string
}

// RepoEntry is one item of the upstream directory listing. Only the
// name is used; the type field exists in the payload but is ignored.
type RepoEntry struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Doer issues HTTP requests. *http.Client satisfies it; tests substitute
// their own transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches template listings and bodies from the upstream collection.
type Client struct {
	http       Doer
	typesURL   string
	rawBaseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithTypesURL overrides the directory listing endpoint.
func WithTypesURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.typesURL = url
		}
	}
}

// WithRawBaseURL overrides the raw content base URL.
func WithRawBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.rawBaseURL = url
		}
	}
}

// NewClient creates a Client backed by the given HTTP doer.
func NewClient(doer Doer, opts ...Option) *Client {
	c := &Client{
		http:       doer,
		typesURL:   DefaultTypesURL,
		rawBaseURL: DefaultRawBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListTypes fetches the directory listing and returns the available
// template type names, sorted and deduplicated.
func (c *Client) ListTypes(ctx context.Context) ([]string, error) {
	log := logging.GetLogger("registry")
	log.Debug().Str("url", c.typesURL).Msg("Fetching type listing")

	body, status, err := c.get(ctx, c.typesURL)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrNetwork, "failed to fetch types")
	}
	if status != http.StatusOK {
		return nil, errors.Newf(errors.ErrNetwork, "failed to fetch types (status %d)", status).
			WithDetail("url", c.typesURL).
			WithDetail("status", status)
	}

	var entries []RepoEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "failed to parse type listing")
	}

	var types []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name, TemplateSuffix) {
			continue
		}
		clean := strings.TrimSuffix(entry.Name, TemplateSuffix)
		if clean != "" {
			types = append(types, clean)
		}
	}
	sort.Strings(types)
	types = dedup(types)

	log.Info().Int("types", len(types)).Msg("Type listing fetched")
	return types, nil
}

// FetchTemplates resolves each requested name, in order, into a
// Template. Built-in flags short-circuit to their canned content; all
// other names are fetched from the raw content host. The first failure
// aborts the whole batch.
func (c *Client) FetchTemplates(ctx context.Context, names []string) ([]Template, error) {
	log := logging.GetLogger("registry")

	templates := make([]Template, 0, len(names))
	for _, name := range names {
		if content, ok := BuiltinContent(name); ok {
			log.Debug().Str("name", name).Msg("Resolved built-in template")
			templates = append(templates, Template{Name: name, Content: content})
			continue
		}

		url := c.rawBaseURL + name + TemplateSuffix
		log.Debug().Str("name", name).Str("url", url).Msg("Fetching template")

		body, status, err := c.get(ctx, url)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrNetwork, "failed to fetch template '%s'", name)
		}
		if status != http.StatusOK {
			return nil, errors.Newf(errors.ErrNotFound, "template '%s' not found (status %d)", name, status).
				WithDetail("url", url).
				WithDetail("status", status)
		}

		templates = append(templates, Template{Name: name, Content: string(body)})
	}
	return templates, nil
}

// get issues a GET and returns the full body and status code.
func (c *Client) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

// dedup removes adjacent duplicates from a sorted slice.
func dedup(sorted []string) []string {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, s := range sorted[1:] {
		if s != out[len(out)-1] {
			out = append(out, s)
		}
	}
	return out
}
