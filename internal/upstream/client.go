package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Código retornado pela plataforma quando o horário já foi tomado
// por outro cliente entre a listagem e a confirmação.
const CodeSlotUnavailable = "slot_unavailable"

type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("salon api: %s (%d)", e.Code, e.Status)
}

func IsSlotUnavailable(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Code == CodeSlotUnavailable
	}
	return false
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{},
	}
}

func (c *Client) ListServices(ctx context.Context, locationID string) ([]Service, error) {
	var out struct {
		Services []Service `json:"services"`
	}

	path := fmt.Sprintf("/v1/locations/%s/services", url.PathEscape(locationID))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Services, nil
}

func (c *Client) ListOperators(ctx context.Context, locationID string) ([]Operator, error) {
	var out struct {
		Operators []Operator `json:"operators"`
	}

	path := fmt.Sprintf("/v1/locations/%s/operators", url.PathEscape(locationID))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Operators, nil
}

// GetSlots busca as janelas de um intervalo de datas (na prática um único dia:
// startDate == endDate) para o conjunto de serviços do carrinho.
func (c *Client) GetSlots(
	ctx context.Context,
	locationID string,
	startDate string,
	endDate string,
	serviceIDs []string,
) (*SlotsResponse, error) {

	q := url.Values{}
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)
	q.Set("service_ids", strings.Join(serviceIDs, ","))

	path := fmt.Sprintf(
		"/v1/locations/%s/slots?%s",
		url.PathEscape(locationID),
		q.Encode(),
	)

	var out SlotsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBooking(
	ctx context.Context,
	req CreateBookingRequest,
) (*CreateBookingResponse, error) {

	var out CreateBookingResponse
	if err := c.do(ctx, http.MethodPost, "/v1/bookings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	path := fmt.Sprintf("/v1/bookings/%s", url.PathEscape(bookingID))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// --------------------------------------------------
// HTTP
// --------------------------------------------------

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Code == "" {
			apiErr.Code = "upstream_error"
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
