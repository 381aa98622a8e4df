package wishlistservice

import (
	"context"

	"github.com/gomarket-io/gomarket/internal/domain"
)

type Repo interface {
	GetWishlist(ctx context.Context, userID int) ([]domain.WishlistItem, error)
	AddItem(ctx context.Context, userID, productID int) (bool, error)
	RemoveItem(ctx context.Context, userID, productID int) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) GetWishlist(ctx context.Context, userID int) ([]domain.WishlistItem, error) {
	return s.repo.GetWishlist(ctx, userID)
}

// AddItem saves a product for later; adding one already on the list is a
// no-op. The returned bool reports whether a row was created.
func (s *Service) AddItem(ctx context.Context, userID, productID int) (bool, error) {
	return s.repo.AddItem(ctx, userID, productID)
}

func (s *Service) RemoveItem(ctx context.Context, userID, productID int) (bool, error) {
	return s.repo.RemoveItem(ctx, userID, productID)
}
