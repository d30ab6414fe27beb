package itad

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/mhollis/dealscout/internal/models"
)

const (
	defaultBaseURL = "https://api.isthereanydeal.com"

	pricesPath = "/games/prices/v3"
)

// Client talks to the IsThereAnyDeal API. It covers both halves of the deal
// pipeline's market side: resolving Steam app ids to ITAD game ids, and
// fetching current prices with their historical baselines.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	shopID     int
	country    string
	logger     *logrus.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a new ITAD client scoped to one shop and country.
func NewClient(apiKey string, shopID int, country string, logger *logrus.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		shopID:     shopID,
		country:    country,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LookupIDs resolves Steam app ids to ITAD game ids in one batch request.
// Duplicates in the input collapse to one lookup; app ids the service does
// not know, or maps to null, are simply absent from the result. An empty
// input returns an empty map without a request.
func (c *Client) LookupIDs(ctx context.Context, appIDs []string) (map[string]string, error) {
	if len(appIDs) == 0 {
		return map[string]string{}, nil
	}

	seen := make(map[string]bool, len(appIDs))
	shopIDs := make([]string, 0, len(appIDs))
	for _, appID := range appIDs {
		if seen[appID] {
			continue
		}
		seen[appID] = true
		shopIDs = append(shopIDs, "app/"+appID)
	}

	u := fmt.Sprintf("%s/lookup/id/shop/%d/v1", c.baseURL, c.shopID)
	body, err := c.post(ctx, u, map[string]string{"key": c.apiKey}, shopIDs, "lookup")
	if err != nil {
		return nil, err
	}

	// Response shape: { "app/1234": "uuid-...", "app/5678": null, ... }
	var raw map[string]*string
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode lookup response: %w", err)
	}

	resolved := make(map[string]string, len(raw))
	for shopID, gameID := range raw {
		if gameID == nil || *gameID == "" {
			continue
		}
		resolved[strings.TrimPrefix(shopID, "app/")] = *gameID
	}
	return resolved, nil
}

type priceAmount struct {
	Amount decimal.Decimal `json:"amount"`
}

type dealOffer struct {
	Price    priceAmount  `json:"price"`
	Regular  priceAmount  `json:"regular"`
	Cut      int          `json:"cut"`
	URL      string       `json:"url"`
	StoreLow *priceAmount `json:"storeLow"`
}

type historyLow struct {
	All *priceAmount `json:"all"`
	Y1  *priceAmount `json:"y1"`
}

type priceItem struct {
	ID         string      `json:"id"`
	Deals      []dealOffer `json:"deals"`
	HistoryLow *historyLow `json:"historyLow"`
}

// Prices fetches the current offers for the given ITAD game ids at the
// configured shop and returns one PriceRecord per game that has at least one
// active deal there. Among a game's offers the numerically lowest current
// price wins, first in response order on ties. Games with no active deal
// produce no record at all.
func (c *Client) Prices(ctx context.Context, itadIDs []string) ([]models.PriceRecord, error) {
	if len(itadIDs) == 0 {
		return nil, nil
	}

	c.logger.Infof("Fetching prices for %d games (country: %s)", len(itadIDs), strings.ToUpper(c.country))

	body, err := c.post(ctx, c.baseURL+pricesPath, map[string]string{
		"key":     c.apiKey,
		"country": strings.ToUpper(c.country),
		"shops":   strconv.Itoa(c.shopID),
		"deals":   "1",
	}, itadIDs, "prices")
	if err != nil {
		return nil, err
	}

	var items []priceItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("failed to decode prices response: %w", err)
	}

	records := make([]models.PriceRecord, 0, len(items))
	for _, item := range items {
		if len(item.Deals) == 0 {
			continue
		}

		best := item.Deals[0]
		for _, d := range item.Deals[1:] {
			if d.Price.Amount.LessThan(best.Price.Amount) {
				best = d
			}
		}

		rec := models.PriceRecord{
			ITADID:          item.ID,
			CurrentPrice:    best.Price.Amount,
			RegularPrice:    best.Regular.Amount,
			DiscountPercent: best.Cut,
			OfferURL:        best.URL,
		}
		if best.StoreLow != nil {
			v := best.StoreLow.Amount
			rec.StoreLow = &v
		}
		if item.HistoryLow != nil {
			if item.HistoryLow.All != nil {
				v := item.HistoryLow.All.Amount
				rec.HistoricalLow = &v
			}
			if item.HistoryLow.Y1 != nil {
				v := item.HistoryLow.Y1.Amount
				rec.OneYearLow = &v
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// post issues one JSON POST and returns the body, or a stage-tagged error
// carrying the status and a truncated body on a non-200 response.
func (c *Client) post(ctx context.Context, rawURL string, params map[string]string, payload any, stage string) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", stage, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", stage, err)
	}
	req.Header.Set("Content-Type", "application/json")
	q := req.URL.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("itad %s request failed: %w", stage, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", stage, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(stage, resp.StatusCode, body)
	}
	return body, nil
}

func apiError(stage string, status int, body []byte) error {
	const maxBody = 300
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	return fmt.Errorf("itad %s request failed with status %d: %s", stage, status, body)
}
