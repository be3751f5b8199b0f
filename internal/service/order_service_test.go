package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-inventory-web/internal/client"
	"go-inventory-web/internal/model"
)

func newOrderService(t *testing.T, handler http.HandlerFunc) OrderService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOrderService(client.New(srv.URL))
}

func TestPlaceForwardsOrder(t *testing.T) {
	svc := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":4,"productId":1,"productName":"Monitor","quantityOrdered":2,"orderDate":"2024-03-01T12:00:00"}`)
	})

	order, err := svc.Place(context.Background(), model.OrderDto{ProductID: 1, Quantity: 2})
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if order.ID != 4 || order.QuantityOrdered != 2 {
		t.Errorf("order = %+v", order)
	}
}

func TestPlacePassesBackendErrorThrough(t *testing.T) {
	svc := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message":"Insufficient stock"}`)
	})

	_, err := svc.Place(context.Background(), model.OrderDto{ProductID: 1, Quantity: 100})
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "Insufficient stock" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestPlaceRejectsZeroQuantityLocally(t *testing.T) {
	called := false
	svc := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	if _, err := svc.Place(context.Background(), model.OrderDto{ProductID: 1, Quantity: 0}); err == nil {
		t.Fatal("expected validation error for quantity 0")
	}
	if called {
		t.Error("invalid order reached the backend")
	}
}

func TestGetOrderNotFound(t *testing.T) {
	svc := newOrderService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := svc.Get(context.Background(), 42)
	if !errors.Is(err, client.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
