package cartservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gomarket-io/gomarket/internal/domain"
)

type Repo interface {
	GetCartItems(ctx context.Context, userID int) ([]domain.CartItem, error)
	GetCartTotal(ctx context.Context, userID int) (decimal.Decimal, error)
	GetCartItemCount(ctx context.Context, userID int) (int, error)
	AddItem(ctx context.Context, userID, productID, sellerID, quantity int) (int, error)
	UpdateItem(ctx context.Context, userID, productID, sellerID, quantity int) (*int, error)
	RemoveItem(ctx context.Context, userID, productID, sellerID int) (bool, error)
	GetDefaultSeller(ctx context.Context, productID int) (*int, error)
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
	ErrNoSeller        = errors.New("no seller has the product in stock")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// CartView is what the cart page renders: items plus the aggregates.
type CartView struct {
	Items []domain.CartItem
	Total decimal.Decimal
	Count int
}

func (s *Service) GetCart(ctx context.Context, userID int) (*CartView, error) {
	items, err := s.repo.GetCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.GetCartTotal(ctx, userID)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.GetCartItemCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &CartView{Items: items, Total: total, Count: count}, nil
}

// AddItem puts quantity of a product into the cart, merging with an
// existing row. When sellerID is nil the default seller is resolved:
// cheapest offer with stock, lowest seller id on price ties.
func (s *Service) AddItem(ctx context.Context, userID, productID int, sellerID *int, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}

	if sellerID == nil {
		resolved, err := s.repo.GetDefaultSeller(ctx, productID)
		if err != nil {
			return 0, err
		}
		if resolved == nil {
			zap.L().Info("no seller with stock", zap.Int("product_id", productID))
			return 0, ErrNoSeller
		}
		sellerID = resolved
	}

	return s.repo.AddItem(ctx, userID, productID, *sellerID, quantity)
}

// UpdateItem sets the exact quantity; zero or negative removes the row.
// A nil result means the row does not exist (or was removed).
func (s *Service) UpdateItem(ctx context.Context, userID, productID, sellerID, quantity int) (*int, error) {
	if quantity <= 0 {
		_, err := s.repo.RemoveItem(ctx, userID, productID, sellerID)
		return nil, err
	}
	return s.repo.UpdateItem(ctx, userID, productID, sellerID, quantity)
}

func (s *Service) RemoveItem(ctx context.Context, userID, productID, sellerID int) (bool, error) {
	return s.repo.RemoveItem(ctx, userID, productID, sellerID)
}
