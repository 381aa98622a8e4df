package catalogservice

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gomarket-io/gomarket/internal/domain"
)

type Repo interface {
	GetProduct(ctx context.Context, productID int) (*domain.Product, error)
	ListProducts(ctx context.Context, category, keyword string) ([]domain.Product, error)
	GetCategories(ctx context.Context) ([]string, error)
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) (bool, error)
	GetInventoryForSeller(ctx context.Context, sellerID int) ([]domain.InventoryItem, error)
	GetSellersForProduct(ctx context.Context, productID int) ([]domain.InventoryItem, error)
	UpsertInventory(ctx context.Context, item *domain.InventoryItem) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrNameRequired     = errors.New("product name is required")
	ErrInvalidInventory = errors.New("inventory quantity and price must not be negative")
)

func (s *Service) GetProduct(ctx context.Context, productID int) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, productID)
}

func (s *Service) ListProducts(ctx context.Context, category, keyword string) ([]domain.Product, error) {
	products, err := s.repo.ListProducts(ctx, category, keyword)
	if err != nil {
		zap.L().Error("failed to list products", zap.Error(err))
		return nil, err
	}
	return products, nil
}

func (s *Service) GetCategories(ctx context.Context) ([]string, error) {
	return s.repo.GetCategories(ctx)
}

func (s *Service) CreateProduct(ctx context.Context, name, description, category string, createdBy int) (*domain.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	product := &domain.Product{
		Name:        strings.TrimSpace(name),
		Description: description,
		Category:    category,
		CreatedBy:   createdBy,
	}
	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		zap.L().Error("failed to create product", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// UpdateProduct rewrites the descriptive fields of a product. Returns
// nil without error when the product does not exist.
func (s *Service) UpdateProduct(ctx context.Context, productID int, name, description, category string) (*domain.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	product := &domain.Product{
		ID:          productID,
		Name:        strings.TrimSpace(name),
		Description: description,
		Category:    category,
	}
	updated, err := s.repo.UpdateProduct(ctx, product)
	if err != nil {
		zap.L().Error("failed to update product", zap.Error(err))
		return nil, err
	}
	if !updated {
		return nil, nil
	}
	return product, nil
}

func (s *Service) GetInventoryForSeller(ctx context.Context, sellerID int) ([]domain.InventoryItem, error) {
	return s.repo.GetInventoryForSeller(ctx, sellerID)
}

func (s *Service) GetSellersForProduct(ctx context.Context, productID int) ([]domain.InventoryItem, error) {
	return s.repo.GetSellersForProduct(ctx, productID)
}

// SetInventory creates or replaces the seller's offer of a product.
func (s *Service) SetInventory(ctx context.Context, sellerID, productID, quantity int, price decimal.Decimal) error {
	if quantity < 0 || price.IsNegative() {
		return ErrInvalidInventory
	}
	item := &domain.InventoryItem{
		SellerID:  sellerID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}
	if err := s.repo.UpsertInventory(ctx, item); err != nil {
		zap.L().Error("failed to set inventory", zap.Error(err))
		return err
	}
	return nil
}
