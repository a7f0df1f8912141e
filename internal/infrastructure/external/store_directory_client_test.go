package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Asignaciones-api/pkg/logger"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stores", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("size"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFindAddressByStoreName_CoincidenciaSinMayusculas(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{
		"content": [
			{"description": "Tienda Norte", "address": "Calle Mayor 1"},
			{"description": "  TIENDA CENTRO ", "address": "Avenida del Puerto 12"}
		],
		"page": {"size": 50, "number": 0}
	}`)
	c := NewStoreDirectoryClient(srv.URL, time.Second, logger.New(logger.Config{Env: "test", Level: "error"}))

	addr, found, err := c.FindAddressByStoreName(context.Background(), "Tienda Centro")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Avenida del Puerto 12", addr)
}

func TestFindAddressByStoreName_SinCoincidencia(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"content": [{"description": "Tienda Centro Sur", "address": "x"}]}`)
	c := NewStoreDirectoryClient(srv.URL, time.Second, nil)

	_, found, err := c.FindAddressByStoreName(context.Background(), "Tienda Centro")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFindAddressByStoreName_FalloSuave(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError, `boom`)
	c := NewStoreDirectoryClient(srv.URL, time.Second, logger.New(logger.Config{Env: "test", Level: "error"}))

	addr, found, err := c.FindAddressByStoreName(context.Background(), "Tienda Centro")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, addr)
}

func TestFindAddressByStoreName_SinBaseURL(t *testing.T) {
	c := NewStoreDirectoryClient("", 0, nil)
	_, found, err := c.FindAddressByStoreName(context.Background(), "Tienda Centro")
	require.NoError(t, err)
	assert.False(t, found)
}
