package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/mhollis/dealscout/internal/models"
)

const (
	defaultAPIBaseURL   = "https://api.steampowered.com"
	defaultStoreBaseURL = "https://store.steampowered.com"

	wishlistPath   = "/IWishlistService/GetWishlist/v1"
	ownedGamesPath = "/IPlayerService/GetOwnedGames/v1/"
	appDetailsPath = "/api/appdetails"
)

// Client talks to the Steam Web API for a single configured user. It is the
// inventory side of the deal pipeline and also feeds the library sync command.
type Client struct {
	httpClient   *http.Client
	apiBaseURL   string
	storeBaseURL string
	apiKey       string
	steamID      string
	logger       *logrus.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithAPIBaseURL overrides the Web API base URL.
func WithAPIBaseURL(u string) Option {
	return func(c *Client) { c.apiBaseURL = u }
}

// WithStoreBaseURL overrides the store API base URL.
func WithStoreBaseURL(u string) Option {
	return func(c *Client) { c.storeBaseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a new Steam client.
func NewClient(apiKey, steamID string, logger *logrus.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		apiBaseURL:   defaultAPIBaseURL,
		storeBaseURL: defaultStoreBaseURL,
		apiKey:       apiKey,
		steamID:      steamID,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type wishlistResponse struct {
	Response struct {
		Items []struct {
			AppID int64 `json:"appid"`
		} `json:"items"`
	} `json:"response"`
}

// Wishlist fetches the user's wishlist and resolves each app id to its store
// name. A failed name lookup degrades that one item to an "AppID <id>"
// placeholder; only the wishlist call itself can fail the run.
func (c *Client) Wishlist(ctx context.Context) ([]models.WishlistItem, error) {
	c.logger.Infof("Fetching Steam wishlist for ID: %s", c.steamID)

	body, err := c.get(ctx, c.apiBaseURL+wishlistPath, map[string]string{
		"key":     c.apiKey,
		"steamid": c.steamID,
	}, "wishlist")
	if err != nil {
		return nil, err
	}

	var payload wishlistResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode wishlist response: %w", err)
	}

	if len(payload.Response.Items) == 0 {
		return nil, nil
	}

	items := make([]models.WishlistItem, 0, len(payload.Response.Items))
	for _, it := range payload.Response.Items {
		appID := strconv.FormatInt(it.AppID, 10)
		items = append(items, models.WishlistItem{
			AppID: appID,
			Name:  c.resolveName(ctx, appID),
		})
	}

	c.logger.Infof("Found %d games in wishlist", len(items))
	return items, nil
}

// resolveName looks up a game's store name via appdetails. The response is
// keyed by the app id itself, hence the gjson path lookups.
func (c *Client) resolveName(ctx context.Context, appID string) string {
	fallback := "AppID " + appID

	body, err := c.get(ctx, c.storeBaseURL+appDetailsPath, map[string]string{
		"appids":  appID,
		"filters": "basic",
	}, "appdetails")
	if err != nil {
		c.logger.Warnf("Could not resolve name for app %s: %v", appID, err)
		return fallback
	}

	if !gjson.GetBytes(body, appID+".success").Bool() {
		return fallback
	}
	name := gjson.GetBytes(body, appID+".data.name").String()
	if name == "" {
		return fallback
	}
	return name
}

type ownedGamesResponse struct {
	Response struct {
		Games []struct {
			AppID           int64  `json:"appid"`
			Name            string `json:"name"`
			PlaytimeForever int64  `json:"playtime_forever"`
			LastPlayed      int64  `json:"rtime_last_played"`
		} `json:"games"`
	} `json:"response"`
}

// OwnedGames fetches the user's owned library including app names and
// playtime, for the sync command.
func (c *Client) OwnedGames(ctx context.Context) ([]models.OwnedGame, error) {
	body, err := c.get(ctx, c.apiBaseURL+ownedGamesPath, map[string]string{
		"key":                       c.apiKey,
		"steamid":                   c.steamID,
		"include_appinfo":           "true",
		"include_played_free_games": "true",
	}, "owned games")
	if err != nil {
		return nil, err
	}

	var payload ownedGamesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode owned games response: %w", err)
	}

	games := make([]models.OwnedGame, 0, len(payload.Response.Games))
	for _, g := range payload.Response.Games {
		games = append(games, models.OwnedGame{
			AppID:           g.AppID,
			Name:            g.Name,
			PlaytimeForever: g.PlaytimeForever,
			LastPlayed:      g.LastPlayed,
		})
	}
	return games, nil
}

// get issues one GET request and returns the body, or a stage-tagged error
// carrying the status and a truncated body on a non-200 response.
func (c *Client) get(ctx context.Context, rawURL string, params map[string]string, stage string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", stage, err)
	}
	q := req.URL.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("steam %s request failed: %w", stage, err)
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
	return fmt.Errorf("steam %s request failed with status %d: %s", stage, status, body)
}
