package repairapi

import (
	"RepairDesk/entity"
	"RepairDesk/internal/config"
	"RepairDesk/internal/lib/sl"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	bookingsPath = "/api/v1/bookings"
	salesPath    = "/api/v1/sales"
	servicesPath = "/api/v1/catalog/services"
	slotsPath    = "/api/v1/catalog/slots"
)

// Service talks to the booking/sale API.
type Service struct {
	BaseURL string
	ApiKey  string
	client  *http.Client
	log     *slog.Logger
}

func NewRepairApiService(conf *config.Config, logger *slog.Logger) *Service {
	return &Service{
		BaseURL: strings.TrimRight(conf.RepairApi.BaseURL, "/"),
		ApiKey:  conf.RepairApi.ApiKey,
		client:  &http.Client{Timeout: conf.RepairApi.Timeout},
		log:     logger.With(sl.Module("repair api")),
	}
}

func (s *Service) CreateBooking(ctx context.Context, req entity.BookingRequest) (*entity.Receipt, error) {
	var receipt entity.Receipt
	if err := s.do(ctx, http.MethodPost, bookingsPath, req, &receipt); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	s.log.With(
		slog.String("tracking_id", receipt.TrackingID),
	).Debug("booking created")
	return &receipt, nil
}

func (s *Service) CreateSaleQuote(ctx context.Context, req entity.SaleQuoteRequest) (*entity.Receipt, error) {
	var receipt entity.Receipt
	if err := s.do(ctx, http.MethodPost, salesPath, req, &receipt); err != nil {
		return nil, fmt.Errorf("create sale quote: %w", err)
	}
	s.log.With(
		slog.String("tracking_id", receipt.TrackingID),
	).Debug("sale quote created")
	return &receipt, nil
}

func (s *Service) ListServices(ctx context.Context) ([]entity.RepairService, error) {
	var services []entity.RepairService
	if err := s.do(ctx, http.MethodGet, servicesPath, nil, &services); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (s *Service) ListTimeSlots(ctx context.Context) ([]entity.TimeSlot, error) {
	var slots []entity.TimeSlot
	if err := s.do(ctx, http.MethodGet, slotsPath, nil, &slots); err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}
	return slots, nil
}

func (s *Service) do(ctx context.Context, method, path string, body, out any) error {
	if s.BaseURL == "" {
		return fmt.Errorf("base url not configured")
	}

	var reader io.Reader
	if body != nil {
		requestBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(requestBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if s.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.ApiKey)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	s.log.With(
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(start)),
	).Debug("api call")

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	envelope, err := ParseResponse(data)
	if err != nil {
		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			return fmt.Errorf("request failed with status: %d", resp.StatusCode)
		}
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if !envelope.Success {
		return fmt.Errorf("response indicated failure: status %d: %s", resp.StatusCode, envelope.Message)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("request failed with status: %d", resp.StatusCode)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err = json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode data: %w", err)
		}
	}
	return nil
}
