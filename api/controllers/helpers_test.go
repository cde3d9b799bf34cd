package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/inventory-backend/internal/inventory"
	"github.com/angelmondragon/inventory-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func newRequest(method, target, body string, params map[string]string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	routeCtx := chi.NewRouteContext()
	for k, v := range params {
		routeCtx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type envelope[T any] struct {
	Data  T `json:"data"`
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var out envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func seededManager(t *testing.T) *inventory.Manager {
	t.Helper()
	m := inventory.NewManager(inventory.ManagerParams{})
	for _, in := range []inventory.AddProductInput{
		{Name: "Widget", Quantity: 5, Price: decimal.RequireFromString("10.00"), Category: "Tools"},
		{Name: "Gadget", Quantity: 2, Price: decimal.RequireFromString("3.50"), Category: "Tools"},
		{Name: "Shirt", Quantity: 25, Price: decimal.RequireFromString("45.00"), Category: "Clothing"},
	} {
		_, err := m.AddProduct(context.Background(), in)
		require.NoError(t, err)
	}
	return m
}
