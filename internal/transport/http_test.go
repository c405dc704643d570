package transport_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/servidz/console/internal/transport"
)

func newServer(t *testing.T, key string) *httptest.Server {
	t.Helper()
	server := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "test", Version: "v0"}, nil)
	opts := transport.Options{}
	if key != "" {
		opts.Auth = transport.AuthMiddleware(transport.StaticKey{Key: key})
	}
	ts := httptest.NewServer(transport.NewHandler(server, opts))
	t.Cleanup(ts.Close)
	return ts
}

func connect(ctx context.Context, endpoint string, client *http.Client) (*sdkmcp.ClientSession, error) {
	c := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0"}, nil)
	return c.Connect(ctx, &sdkmcp.StreamableClientTransport{Endpoint: endpoint, HTTPClient: client}, nil)
}

func TestHandler_Health(t *testing.T) {
	ts := newServer(t, "secret")

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", string(body))
}

func TestHandler_MCPRequiresKey(t *testing.T) {
	ts := newServer(t, "secret")

	resp, err := http.Post(ts.URL+"/mcp", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_MCPWithKey(t *testing.T) {
	ts := newServer(t, "secret")
	ctx := context.Background()

	client := &http.Client{Transport: &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "secret"}),
	}}
	cs, err := connect(ctx, ts.URL+"/mcp", client)
	require.NoError(t, err)
	defer cs.Close()

	require.NoError(t, cs.Ping(ctx, nil))
}

func TestHandler_MCPWithoutAuth(t *testing.T) {
	ts := newServer(t, "")
	ctx := context.Background()

	cs, err := connect(ctx, ts.URL+"/mcp", http.DefaultClient)
	require.NoError(t, err)
	defer cs.Close()

	require.NoError(t, cs.Ping(ctx, nil))
}
