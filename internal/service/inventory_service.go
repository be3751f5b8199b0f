package service

import (
	"context"
	"io"
	"sync"

	"go-inventory-web/internal/client"
	"go-inventory-web/internal/model"
	"go-inventory-web/pkg/validator"

	"github.com/sirupsen/logrus"
)

// InventoryService owns the in-memory product collection. The collection is a
// cache of the last full fetch, in server order, and is invalidated by a full
// re-fetch after every create, update, order or import. Delete is the one
// exception: it patches the snapshot locally by identity instead of
// re-fetching.
type InventoryService interface {
	EnsureLoaded(ctx context.Context) error
	Refresh(ctx context.Context) error
	Products() []model.Product
	ProductByID(id int64) (*model.Product, bool)
	Create(ctx context.Context, form model.ProductFormData) error
	Update(ctx context.Context, id int64, form model.ProductFormData) error
	Delete(ctx context.Context, id int64) error
	Import(ctx context.Context, filename string, file io.Reader) (*model.CsvImportResult, error)
	Search(ctx context.Context, name string) ([]model.Product, error)
	ByCategory(ctx context.Context, category string) ([]model.Product, error)
	LowStock(ctx context.Context) ([]model.Product, error)
	OperationCount(ctx context.Context) (int, error)
}

type inventoryService struct {
	backend client.Backend
	log     *logrus.Logger

	mu       sync.RWMutex
	products []model.Product
	loaded   bool
}

func NewInventoryService(backend client.Backend, log *logrus.Logger) InventoryService {
	return &inventoryService{
		backend: backend,
		log:     log,
	}
}

// EnsureLoaded fetches the collection on first use only, so a render after a
// local delete patch does not trigger the re-fetch the delete flow skips.
func (s *inventoryService) EnsureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	return s.Refresh(ctx)
}

func (s *inventoryService) Refresh(ctx context.Context) error {
	products, err := s.backend.ListProducts(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.products = products
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Products returns a copy of the current snapshot in fetch order.
func (s *inventoryService) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]model.Product, len(s.products))
	copy(snapshot, s.products)
	return snapshot
}

func (s *inventoryService) ProductByID(id int64) (*model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, true
		}
	}
	return nil, false
}

func (s *inventoryService) Create(ctx context.Context, form model.ProductFormData) error {
	if err := validator.FirstError(form); err != nil {
		return err
	}
	if _, err := s.backend.CreateProduct(ctx, form); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

func (s *inventoryService) Update(ctx context.Context, id int64, form model.ProductFormData) error {
	if err := validator.FirstError(form); err != nil {
		return err
	}
	if _, err := s.backend.UpdateProduct(ctx, id, form); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Delete removes the product remotely, then drops the matching entry from the
// snapshot. No re-fetch.
func (s *inventoryService) Delete(ctx context.Context, id int64) error {
	if err := s.backend.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	return nil
}

// Import uploads the raw file and refreshes the collection. The returned
// result still carries the backend's per-row errors when individual rows
// failed; only a failed upload discards everything.
func (s *inventoryService) Import(ctx context.Context, filename string, file io.Reader) (*model.CsvImportResult, error) {
	result, err := s.backend.ImportCSV(ctx, filename, file)
	if err != nil {
		return nil, err
	}
	if err := s.Refresh(ctx); err != nil {
		s.log.WithError(err).Warn("Product refresh after import failed")
	}
	return result, nil
}

// Search and ByCategory are pass-through fetches for filtered views; they do
// not replace the snapshot.
func (s *inventoryService) Search(ctx context.Context, name string) ([]model.Product, error) {
	return s.backend.SearchProducts(ctx, name)
}

func (s *inventoryService) ByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return s.backend.ProductsByCategory(ctx, category)
}

// LowStock fetches the low-stock list independently of the snapshot; the
// banner it feeds has its own refresh cycle and an accepted staleness window.
func (s *inventoryService) LowStock(ctx context.Context) ([]model.Product, error) {
	return s.backend.LowStockProducts(ctx)
}

func (s *inventoryService) OperationCount(ctx context.Context) (int, error) {
	return s.backend.OperationCount(ctx)
}
