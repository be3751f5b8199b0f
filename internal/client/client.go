package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-inventory-web/internal/model"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the backend answers 404 for a single resource.
var ErrNotFound = errors.New("resource not found")

// APIError carries a non-2xx backend response. Message holds the body's
// "message" or "error" field when present so callers can surface it verbatim
// (the order form does exactly that).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Backend is the full surface of the inventory API consumed by this client,
// one method per endpoint.
type Backend interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, form model.ProductFormData) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, form model.ProductFormData) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	LowStockProducts(ctx context.Context) ([]model.Product, error)
	SearchProducts(ctx context.Context, name string) ([]model.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
	ImportCSV(ctx context.Context, filename string, file io.Reader) (*model.CsvImportResult, error)
	OperationCount(ctx context.Context) (int, error)
	PlaceOrder(ctx context.Context, order model.OrderDto) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Backend = (*Client)(nil)

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.doJSON(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, form model.ProductFormData) (*model.Product, error) {
	var product model.Product
	if err := c.doJSON(ctx, http.MethodPost, "/products", form, &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, form model.ProductFormData) (*model.Product, error) {
	var product model.Product
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), form, &product); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}

func (c *Client) LowStockProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.doJSON(ctx, http.MethodGet, "/products/low-stock", nil, &products); err != nil {
		return nil, fmt.Errorf("failed to list low-stock products: %w", err)
	}
	return products, nil
}

func (c *Client) SearchProducts(ctx context.Context, name string) ([]model.Product, error) {
	query := url.Values{"name": {name}}
	var products []model.Product
	if err := c.doJSON(ctx, http.MethodGet, "/products/search?"+query.Encode(), nil, &products); err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var products []model.Product
	if err := c.doJSON(ctx, http.MethodGet, "/products/category/"+url.PathEscape(category), nil, &products); err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	return products, nil
}

// ImportCSV uploads the raw file as multipart field "file". The client never
// parses or validates the CSV content; that is entirely the backend's job.
func (c *Client) ImportCSV(ctx context.Context, filename string, file io.Reader) (*model.CsvImportResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	var result model.CsvImportResult
	if err := c.do(ctx, http.MethodPost, "/products/import", &body, writer.FormDataContentType(), &result); err != nil {
		return nil, fmt.Errorf("failed to import products: %w", err)
	}
	return &result, nil
}

// OperationCount fetches the backend's diagnostic operation counter. The body
// is a bare JSON integer.
func (c *Client) OperationCount(ctx context.Context) (int, error) {
	var count int
	if err := c.doJSON(ctx, http.MethodGet, "/products/stats/operations", nil, &count); err != nil {
		return 0, fmt.Errorf("failed to get operation counter: %w", err)
	}
	return count, nil
}

func (c *Client) PlaceOrder(ctx context.Context, order model.OrderDto) (*model.Order, error) {
	var created model.Order
	if err := c.doJSON(ctx, http.MethodPost, "/orders", order, &created); err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	return &created, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.doJSON(ctx, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &order); err != nil {
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}
	return &order, nil
}

// doJSON marshals payload (when non-nil) as a JSON body and delegates to do.
func (c *Client) doJSON(ctx context.Context, method, path string, payload interface{}, out interface{}) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, body, contentType, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call inventory service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// readErrorMessage pulls a human-readable message out of an error body. The
// backend uses {"message": ...} for validation failures; {"error": ...} and
// plain-text bodies are accepted too.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(data))
}
