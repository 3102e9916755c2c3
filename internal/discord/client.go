package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/NeuroFarm_Go/internal/domain"
	"github.com/osse101/NeuroFarm_Go/internal/handler"
)

// APIClient handles communication with the NeuroFarm API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: APIRequestTimeout,
		},
		APIKey:     apiKey,
		MaxRetries: APIMaxRetries,
		RetryDelay: APIRetryBaseDelay,
	}
}

// APIError is a non-2xx response from the API
type APIError struct {
	Status            int
	Code              string
	Message           string
	Suggestion        string
	RetryAfterSeconds int64
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// AsAPIError returns the APIError in err's chain, if any
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// AccountKey returns the API account key for a Discord user
func AccountKey(discordID string) string {
	return AccountKeyPrefix + discordID
}

// doRequest performs an HTTP request, retrying transport failures and 5xx
// responses with exponential backoff and jitter
func (c *APIClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	target := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay * time.Duration(1<<uint(attempt-1))
			if c.RetryDelay > 0 {
				delay += time.Duration(rand.Int64N(int64(c.RetryDelay)/5 + 1))
			}
			slog.Info(LogMsgRetryingRequest, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		// Keep the last 5xx body so the caller sees the server's code
		if attempt == c.MaxRetries {
			return resp, nil
		}
		_ = resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// call performs a request and decodes a 2xx body into out
func (c *APIClient) call(ctx context.Context, method, path string, body, out interface{}) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body handler.ErrorResponse
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(data, &body); err == nil && (body.Code != "" || body.Error != "") {
		apiErr.Code = body.Code
		apiErr.Message = body.Error
		apiErr.Suggestion = body.Suggestion
		apiErr.RetryAfterSeconds = body.RetryAfterSeconds
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	if apiErr.RetryAfterSeconds == 0 {
		if s, err := strconv.ParseInt(resp.Header.Get(handler.HeaderRetryAfter), 10, 64); err == nil {
			apiErr.RetryAfterSeconds = s
		}
	}
	return apiErr
}

func playerPath(accountKey string) string {
	return "/api/v1/players/" + url.PathEscape(accountKey)
}

func farmPath(farmID int64) string {
	return "/api/v1/farms/" + strconv.FormatInt(farmID, 10)
}

// EnsurePlayer registers the player, or returns the existing one
func (c *APIClient) EnsurePlayer(ctx context.Context, accountKey, language string) (*handler.CreatePlayerResponse, error) {
	var out handler.CreatePlayerResponse
	req := handler.CreatePlayerRequest{AccountKey: accountKey, Language: language}
	if err := c.call(ctx, http.MethodPost, "/api/v1/players", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPlayer fetches a player and their level progress
func (c *APIClient) GetPlayer(ctx context.Context, accountKey string) (*handler.PlayerResponse, error) {
	var out handler.PlayerResponse
	if err := c.call(ctx, http.MethodGet, playerPath(accountKey), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetLanguage changes a player's display language
func (c *APIClient) SetLanguage(ctx context.Context, accountKey, language string) (*handler.PlayerResponse, error) {
	var out handler.PlayerResponse
	req := handler.SetLanguageRequest{Language: language}
	if err := c.call(ctx, http.MethodPut, playerPath(accountKey)+"/language", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EnsureFarm returns the player's farm, creating it on first use
func (c *APIClient) EnsureFarm(ctx context.Context, accountKey string) (*domain.Farm, error) {
	var out domain.Farm
	if err := c.call(ctx, http.MethodPost, playerPath(accountKey)+"/farm", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Plant plants a crop on a farm
func (c *APIClient) Plant(ctx context.Context, farmID int64, crop string) (*handler.PlantedCropResponse, error) {
	var out handler.PlantedCropResponse
	req := handler.PlantRequest{Crop: crop}
	if err := c.call(ctx, http.MethodPost, farmPath(farmID)+"/crops", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCrops returns a farm's unharvested crops
func (c *APIClient) ListCrops(ctx context.Context, farmID int64) ([]handler.PlantedCropResponse, error) {
	var out []handler.PlantedCropResponse
	if err := c.call(ctx, http.MethodGet, farmPath(farmID)+"/crops", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Harvest harvests a planted crop
func (c *APIClient) Harvest(ctx context.Context, farmID, cropID int64) (*handler.HarvestResponse, error) {
	var out handler.HarvestResponse
	path := fmt.Sprintf("%s/crops/%d/harvest", farmPath(farmID), cropID)
	if err := c.call(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PurchaseAnimal buys an animal for a farm
func (c *APIClient) PurchaseAnimal(ctx context.Context, farmID int64, animal string) (*handler.OwnedAnimalResponse, error) {
	var out handler.OwnedAnimalResponse
	req := handler.PurchaseAnimalRequest{Animal: animal}
	if err := c.call(ctx, http.MethodPost, farmPath(farmID)+"/animals", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAnimals returns a farm's animals
func (c *APIClient) ListAnimals(ctx context.Context, farmID int64) ([]handler.OwnedAnimalResponse, error) {
	var out []handler.OwnedAnimalResponse
	if err := c.call(ctx, http.MethodGet, farmPath(farmID)+"/animals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Collect collects an animal's product
func (c *APIClient) Collect(ctx context.Context, farmID, animalID int64) (*handler.CollectResponse, error) {
	var out handler.CollectResponse
	path := fmt.Sprintf("%s/animals/%d/collect", farmPath(farmID), animalID)
	if err := c.call(ctx, http.MethodPost, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Explore explores a region
func (c *APIClient) Explore(ctx context.Context, accountKey, region string) (*domain.ExploreResult, error) {
	var out domain.ExploreResult
	req := handler.ExploreRequest{Region: region}
	if err := c.call(ctx, http.MethodPost, playerPath(accountKey)+"/explore", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Fish goes fishing
func (c *APIClient) Fish(ctx context.Context, accountKey string) (*domain.FishResult, error) {
	var out domain.FishResult
	if err := c.call(ctx, http.MethodPost, playerPath(accountKey)+"/fish", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OpenChest opens a treasure chest
func (c *APIClient) OpenChest(ctx context.Context, accountKey string) (*domain.ChestResult, error) {
	var out domain.ChestResult
	if err := c.call(ctx, http.MethodPost, playerPath(accountKey)+"/chest", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CatalogCrops lists the crop catalog
func (c *APIClient) CatalogCrops(ctx context.Context) ([]handler.CropTypeResponse, error) {
	var out []handler.CropTypeResponse
	if err := c.call(ctx, http.MethodGet, "/api/v1/catalog/crops", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CatalogAnimals lists the animal catalog
func (c *APIClient) CatalogAnimals(ctx context.Context) ([]handler.AnimalTypeResponse, error) {
	var out []handler.AnimalTypeResponse
	if err := c.call(ctx, http.MethodGet, "/api/v1/catalog/animals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CatalogRegions lists the explorable regions
func (c *APIClient) CatalogRegions(ctx context.Context) ([]handler.RegionResponse, error) {
	var out []handler.RegionResponse
	if err := c.call(ctx, http.MethodGet, "/api/v1/catalog/regions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
