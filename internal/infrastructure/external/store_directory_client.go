// Package external adaptadores hacia servicios de terceros.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/Asignaciones-api/internal/application/ports"
	"github.com/jhoicas/Asignaciones-api/pkg/logger"
)

var _ ports.AddressLookup = (*StoreDirectoryClient)(nil)

// pageSize la API se consulta en una sola página.
const pageSize = 50

// StoreDirectoryClient consulta el directorio externo de tiendas para obtener
// la dirección postal a partir del nombre.
type StoreDirectoryClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewStoreDirectoryClient construye el adaptador. Con baseURL vacío todas las
// búsquedas devuelven "no encontrado" sin hacer peticiones.
func NewStoreDirectoryClient(baseURL string, timeout time.Duration, log *logger.Logger) *StoreDirectoryClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &StoreDirectoryClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type storePage struct {
	Content []externalStore `json:"content"`
}

type externalStore struct {
	Description string `json:"description"`
	Address     string `json:"address"`
}

// FindAddressByStoreName primera tienda cuya descripción coincide con el nombre
// (trim + sin distinguir mayúsculas). Los fallos de red o de formato se registran
// como Warn y se devuelven como "no encontrado": nunca propagan error.
func (c *StoreDirectoryClient) FindAddressByStoreName(ctx context.Context, storeName string) (string, bool, error) {
	if c.baseURL == "" || strings.TrimSpace(storeName) == "" {
		return "", false, nil
	}
	stores, err := c.fetch(ctx)
	if err != nil {
		if c.log != nil {
			c.log.Warn().Err(err).Str("store_name", storeName).Msg("directorio externo de tiendas no disponible")
		}
		return "", false, nil
	}
	folder := cases.Fold()
	want := folder.String(strings.TrimSpace(storeName))
	for _, s := range stores {
		if folder.String(strings.TrimSpace(s.Description)) == want {
			return s.Address, true, nil
		}
	}
	return "", false, nil
}

func (c *StoreDirectoryClient) fetch(ctx context.Context) ([]externalStore, error) {
	url := fmt.Sprintf("%s/stores?size=%d", c.baseURL, pageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("external: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("external: GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("external: HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var page storePage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("external: decode response: %w", err)
	}
	return page.Content, nil
}
