package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL     = "https://api.mercadolibre.com"
	defaultHTTPTimeout = 10 * time.Second
)

// MeliClient is a small HTTP client to talk to Mercado Libre public APIs.
type MeliClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewMeliClient builds a client against the given API root. An empty
// baseURL selects the production Mercado Libre endpoint.
func NewMeliClient(baseURL string) *MeliClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &MeliClient{
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		baseURL: baseURL,
	}
}

func (c *MeliClient) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// PaymentMethods returns the payment methods available on one site.
func (c *MeliClient) PaymentMethods(ctx context.Context, siteID string) ([]CatalogRecord, error) {
	endpoint := fmt.Sprintf("%s/sites/%s/payment_methods", c.baseURL, siteID)
	return c.fetchCatalog(ctx, "payment methods", endpoint)
}

// Categories returns the root categories of one site.
func (c *MeliClient) Categories(ctx context.Context, siteID string) ([]CatalogRecord, error) {
	endpoint := fmt.Sprintf("%s/sites/%s/categories", c.baseURL, siteID)
	return c.fetchCatalog(ctx, "categories", endpoint)
}

// fetchCatalog issues one GET against a catalog endpoint and decodes the
// JSON-array body. Records keep whatever keys the API returned.
func (c *MeliClient) fetchCatalog(ctx context.Context, what, endpoint string) ([]CatalogRecord, error) {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("meli %s: unexpected status %d - %s", what, resp.StatusCode, string(errorBody))
	}

	var records []CatalogRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("json decode %s: %w", what, err)
	}
	return records, nil
}

// SearchByCategory fetches one page of category search results for a site,
// starting at the given offset.
func (c *MeliClient) SearchByCategory(ctx context.Context, siteID, categoryID string, offset int) (*SearchResponse, error) {
	endpoint := fmt.Sprintf("%s/sites/%s/search", c.baseURL, siteID)

	q := url.Values{}
	q.Set("category", categoryID)
	q.Set("offset", fmt.Sprintf("%d", offset))

	req, err := c.newRequest(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("meli search: unexpected status %d - %s", resp.StatusCode, string(errorBody))
	}

	var sr SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("json decode search: %w", err)
	}
	return &sr, nil
}
