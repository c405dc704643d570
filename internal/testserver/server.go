package testserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/servidz/console/internal/app"
	"github.com/servidz/console/internal/config"
)

// Server is a console MCP server over HTTP, backed by a fake marketplace API
// and a temporary database.
type Server struct {
	Backend *Backend
	App     *app.App
	HTTP    *httptest.Server
	key     string
}

// New starts a console server. A non-empty key enables operator auth.
func New(t *testing.T, key string) *Server {
	t.Helper()

	b := NewBackend(t)
	cfg := config.Default()
	cfg.API.BaseURL = b.URL()
	cfg.DB.Path = filepath.Join(t.TempDir(), "console.db")
	cfg.Transport.Mode = "http"
	cfg.Auth.Enabled = key != ""
	cfg.Auth.Key = key

	a, err := app.Build(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	ts := httptest.NewServer(a.HTTPHandler(a.MCPServer("test")))
	t.Cleanup(ts.Close)

	return &Server{Backend: b, App: a, HTTP: ts, key: key}
}

// MCPURL is the streamable HTTP endpoint.
func (s *Server) MCPURL() string {
	return s.HTTP.URL + "/mcp"
}

// Connect opens an MCP client session, presenting the operator key if set.
func (s *Server) Connect(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	httpClient := http.DefaultClient
	if s.key != "" {
		httpClient = &http.Client{Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: s.key}),
		}}
	}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0"}, nil)
	cs, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint:   s.MCPURL(),
		HTTPClient: httpClient,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}
