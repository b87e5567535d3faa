package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"
	"flightwatch-service/pkg/logger"
)

// FlightDataClient fetches flight snapshots from the external flight-data
// HTTP service.
type FlightDataClient struct {
	logger  logger.Logger
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewFlightDataClient creates a new flight data client
func NewFlightDataClient(baseURL, apiKey string, logger logger.Logger) repository.FlightProvider {
	return &FlightDataClient{
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type flightResponse struct {
	FlightNumber       string     `json:"flightNumber"`
	Status             string     `json:"status"`
	ScheduledDeparture *time.Time `json:"scheduledDeparture"`
	ActualDeparture    *time.Time `json:"actualDeparture"`
	ScheduledArrival   *time.Time `json:"scheduledArrival"`
	ActualArrival      *time.Time `json:"actualArrival"`
	Gate               string     `json:"gate"`
	Terminal           string     `json:"terminal"`
}

// FetchSnapshot fetches the latest snapshot for a flight number
func (c *FlightDataClient) FetchSnapshot(ctx context.Context, flightNumber string) (*entity.FlightSnapshot, error) {
	endpoint := fmt.Sprintf("%s/api/v1/flights/%s/latest", c.baseURL, url.PathEscape(flightNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query flight data service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", repository.ErrFlightNotFound, flightNumber)
	}

	if resp.StatusCode != http.StatusOK {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return nil, fmt.Errorf("flight data service returned status %d: %v", resp.StatusCode, errorBody)
	}

	var fr flightResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return nil, fmt.Errorf("failed to decode flight response: %w", err)
	}

	if fr.FlightNumber == "" {
		fr.FlightNumber = flightNumber
	}

	c.logger.Debug("Fetched flight snapshot",
		"flightNumber", fr.FlightNumber,
		"status", fr.Status)

	return &entity.FlightSnapshot{
		FlightNumber:       fr.FlightNumber,
		Status:             fr.Status,
		ScheduledDeparture: fr.ScheduledDeparture,
		ActualDeparture:    fr.ActualDeparture,
		ScheduledArrival:   fr.ScheduledArrival,
		ActualArrival:      fr.ActualArrival,
		Gate:               fr.Gate,
		Terminal:           fr.Terminal,
		FetchedAt:          time.Now(),
	}, nil
}
