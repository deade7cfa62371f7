package coins

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultAPIBaseURL is the platform's public query API.
const DefaultAPIBaseURL = "https://api-sdk.zora.engineering"

const maxErrorBody = 512

// HTTPClient implements Querier against the platform's REST API.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *logrus.Logger
}

// NewHTTPClient builds a query client. apiKey may be empty: queries are
// served without one under the platform's public rate limits.
func NewHTTPClient(baseURL, apiKey string, logger *logrus.Logger) *HTTPClient {
	if logger == nil {
		logger = logrus.New()
	}
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

func (c *HTTPClient) GetCoin(ctx context.Context, q CoinQuery) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("address", q.Address)
	params.Set("chain", strconv.FormatInt(q.ChainID, 10))
	return c.get(ctx, "/coin", params)
}

func (c *HTTPClient) GetCoins(ctx context.Context, qs []CoinQuery) (json.RawMessage, error) {
	params := url.Values{}
	for _, q := range qs {
		params.Add("coins", fmt.Sprintf("%d:%s", q.ChainID, q.Address))
	}
	return c.get(ctx, "/coins", params)
}

func (c *HTTPClient) GetCoinHolders(ctx context.Context, q PageQuery) (json.RawMessage, error) {
	return c.get(ctx, "/coinHolders", pageParams(q, "count"))
}

// GetCoinSwaps mirrors the platform API, which names the swaps page size
// "first" while every other feed calls it "count".
func (c *HTTPClient) GetCoinSwaps(ctx context.Context, q PageQuery) (json.RawMessage, error) {
	return c.get(ctx, "/coinSwaps", pageParams(q, "first"))
}

func (c *HTTPClient) GetCoinComments(ctx context.Context, q PageQuery) (json.RawMessage, error) {
	return c.get(ctx, "/coinComments", pageParams(q, "count"))
}

func (c *HTTPClient) GetProfile(ctx context.Context, identifier string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("identifier", identifier)
	return c.get(ctx, "/profile", params)
}

func (c *HTTPClient) GetProfileCoins(ctx context.Context, q ProfileCoinsQuery) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("identifier", q.Identifier)
	if q.Count > 0 {
		params.Set("count", strconv.Itoa(q.Count))
	}
	if q.After != "" {
		params.Set("after", q.After)
	}
	for _, id := range q.ChainIDs {
		params.Add("chainIds", strconv.FormatInt(id, 10))
	}
	for _, ref := range q.PlatformReferrers {
		params.Add("platformReferrerAddress", ref)
	}
	return c.get(ctx, "/profileCoins", params)
}

func (c *HTTPClient) GetProfileBalances(ctx context.Context, q ProfileQuery) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("identifier", q.Identifier)
	if q.Count > 0 {
		params.Set("count", strconv.Itoa(q.Count))
	}
	if q.After != "" {
		params.Set("after", q.After)
	}
	return c.get(ctx, "/profileBalances", params)
}

func (c *HTTPClient) Explore(ctx context.Context, list ExploreList, q ExploreQuery) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("listType", string(list))
	if q.Count > 0 {
		params.Set("count", strconv.Itoa(q.Count))
	}
	if q.After != "" {
		params.Set("after", q.After)
	}
	return c.get(ctx, "/explore", params)
}

func pageParams(q PageQuery, countKey string) url.Values {
	params := url.Values{}
	params.Set("address", q.Address)
	params.Set("chain", strconv.FormatInt(q.ChainID, 10))
	if q.After != "" {
		params.Set("after", q.After)
	}
	if q.Count > 0 {
		params.Set(countKey, strconv.Itoa(q.Count))
	}
	return params
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if c.apiKey != "" {
		req.Header.Set("api-key", c.apiKey)
	}

	c.logger.WithFields(logrus.Fields{
		"path":       path,
		"request_id": requestID,
	}).Debug("platform API request")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("platform API request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read platform API response for %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := string(body)
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, fmt.Errorf("platform API %s returned %d: %s", path, resp.StatusCode, snippet)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("platform API %s returned malformed JSON", path)
	}

	return json.RawMessage(body), nil
}
