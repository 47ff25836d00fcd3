package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/glorpus-work/eofetch/pkg/auth"
	pkgerrors "github.com/glorpus-work/eofetch/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// Config holds catalog client settings.
type Config struct {
	BaseURL  string             // search endpoint root, e.g. https://catalogue.dataspace.copernicus.eu/stac
	Token    string             // optional bearer token
	Auth     auth.Authenticator // optional; overrides Token when set
	Timeout  time.Duration      // HTTP timeout; 0 uses a default
	CacheDir string             // optional on-disk response cache; empty disables caching
	CacheTTL time.Duration      // cache entry lifetime; 0 means entries never expire
}

// Client is an HTTP client for a STAC-style catalog search API.
type Client struct {
	baseURL  string
	auth     auth.Authenticator
	cacheDir string
	cacheTTL time.Duration
	http     *http.Client
}

// NewClient creates a catalog client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	authenticator := cfg.Auth
	if authenticator == nil && cfg.Token != "" {
		authenticator = auth.BearerAuth{Token: cfg.Token}
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		auth:     authenticator,
		cacheDir: cfg.CacheDir,
		cacheTTL: cfg.CacheTTL,
		http:     &http.Client{Timeout: timeout},
	}
}

type searchRequest struct {
	Collections []string   `json:"collections"`
	BBox        [4]float64 `json:"bbox"`
	Datetime    string     `json:"datetime"`
	Limit       int        `json:"limit,omitempty"`
	NextToken   string     `json:"next,omitempty"`
}

type featureCollection struct {
	Features []feature `json:"features"`
	NextKey  string    `json:"next"`
}

type feature struct {
	ID         string          `json:"id"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties struct {
		Datetime time.Time `json:"datetime"`
	} `json:"properties"`
	Assets map[string]struct {
		Href string `json:"href"`
	} `json:"assets"`
}

// Search runs one catalog query and returns all matching records, following
// pagination until the result set is complete. When a cache directory is
// configured, a previously stored response for the same query is returned
// without network traffic.
func (c *Client) Search(ctx context.Context, q Query) ([]Record, error) {
	if cached, ok := c.loadCached(q); ok {
		return cached, nil
	}

	var records []Record
	next := ""
	for {
		page, err := c.searchPage(ctx, q, next)
		if err != nil {
			return nil, err
		}
		for _, f := range page.Features {
			records = append(records, recordFromFeature(f))
		}
		if page.NextKey == "" {
			break
		}
		next = page.NextKey
	}

	if err := c.storeCached(q, records); err != nil {
		return nil, err
	}
	return records, nil
}

// SearchMany runs the query over several bounding boxes, deduplicating the
// boxes first, and concatenates the results.
func (c *Client) SearchMany(ctx context.Context, boxes []BBox, q Query) ([]Record, error) {
	var records []Record
	for _, box := range UniqueBBoxes(boxes) {
		q.BBox = box
		found, err := c.Search(ctx, q)
		if err != nil {
			return nil, err
		}
		records = append(records, found...)
	}
	return records, nil
}

func (c *Client) searchPage(ctx context.Context, q Query, next string) (*featureCollection, error) {
	body, err := json.Marshal(searchRequest{
		Collections: []string{q.Collection},
		BBox:        q.BBox.Slice(),
		Datetime:    q.Start.UTC().Format(time.RFC3339) + "/" + q.End.UTC().Format(time.RFC3339),
		Limit:       q.Limit,
		NextToken:   next,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to encode search request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create search request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.auth != nil {
		if err := c.auth.Apply(req); err != nil {
			return nil, pkgerrors.Wrap(err, "failed to authenticate search request")
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.ErrCatalogQuery.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrCatalogQuery, "unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to read search response")
	}
	var page featureCollection
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to decode search response")
	}
	return &page, nil
}

func recordFromFeature(f feature) Record {
	r := Record{
		ID:        f.ID,
		Timestamp: f.Properties.Datetime,
		Geometry:  f.Geometry,
	}
	if asset, ok := f.Assets["data"]; ok {
		r.DataURI = asset.Href
	}
	return r
}
