// Package directoryclient implementa el servicio de consulta del directorio contra la API HTTP
// (/api/practitioners). Permite correr el controlador en un proceso distinto al de la base de datos.
package directoryclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	appdir "github.com/clairefro/flc-wix/internal/application/directory"
	"github.com/clairefro/flc-wix/internal/application/dto"
	domaindir "github.com/clairefro/flc-wix/internal/domain/directory"
)

var _ appdir.QueryService = (*Client)(nil)

// Client cliente HTTP de la API del directorio.
type Client struct {
	baseURL string
	http    *http.Client
}

// New construye el cliente. timeout <= 0 deja el límite al contexto de cada llamada.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Count GET /api/practitioners/count.
func (c *Client) Count(ctx context.Context, p domaindir.Predicate) (int, error) {
	var out dto.CountResponse
	if err := c.get(ctx, "/api/practitioners/count", predicateValues(p), &out); err != nil {
		return 0, err
	}
	return out.Total, nil
}

// FetchPage GET /api/practitioners.
func (c *Client) FetchPage(ctx context.Context, p domaindir.Predicate, skip, limit int) ([]dto.PractitionerDTO, error) {
	q := predicateValues(p)
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))
	var out dto.PractitionerPageResponse
	if err := c.get(ctx, "/api/practitioners", q, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Regions GET /api/practitioners/regions.
func (c *Client) Regions(ctx context.Context, country string) ([]string, error) {
	q := url.Values{}
	q.Set("country", country)
	var out []string
	if err := c.get(ctx, "/api/practitioners/regions", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("directory api: request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("directory api: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("directory api: %s: status %d %s %s", path, resp.StatusCode, apiErr.Code, apiErr.Message)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("directory api: decodificar %s: %w", path, err)
	}
	return nil
}

func predicateValues(p domaindir.Predicate) url.Values {
	q := url.Values{}
	if p.Country != "" {
		q.Set("country", p.Country)
	}
	for _, r := range p.Regions {
		q.Add("region", r)
	}
	if p.Name != "" {
		q.Set("name", p.Name)
	}
	return q
}
