package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/liliang-cn/film-api/internal/data"
	"github.com/liliang-cn/film-api/internal/jsonlog"
	"github.com/stretchr/testify/require"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	seed, err := data.DefaultSeed()
	require.NoError(t, err)

	store := data.NewStore(seed)

	return &application{
		logger: jsonlog.New(io.Discard, jsonlog.LevelOff),
		store:  store,
		models: data.NewModels(store),
	}
}

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	return &testServer{ts}
}

type testResponse struct {
	status int
	header http.Header
	body   string
}

func (ts *testServer) do(t *testing.T, method, urlPath, body string, headers map[string]string) testResponse {
	t.Helper()

	var rb io.Reader
	if body != "" {
		rb = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, ts.URL+urlPath, rb)
	require.NoError(t, err)

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rs, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer rs.Body.Close()

	b, err := io.ReadAll(rs.Body)
	require.NoError(t, err)

	return testResponse{status: rs.StatusCode, header: rs.Header, body: string(b)}
}

func (ts *testServer) get(t *testing.T, urlPath string) testResponse {
	t.Helper()
	return ts.do(t, http.MethodGet, urlPath, "", nil)
}

func countRecords(t *testing.T, body string) int {
	t.Helper()

	var records []map[string]interface{}
	decodeJSON(t, body, &records)
	return len(records)
}

func decodeJSON(t *testing.T, body string, dst interface{}) {
	t.Helper()

	require.NoError(t, json.Unmarshal([]byte(body), dst))
}
