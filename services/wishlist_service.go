package services

import (
	"context"
	"net/http"

	"github.com/nicgen/buy-02/clients"
)

// WishlistService builds requests against the wishlist endpoints. The
// wishlist itself lives server-side as a set of product ids per user.
type WishlistService struct {
	api *clients.APIClient
}

func NewWishlistService(api *clients.APIClient) *WishlistService {
	return &WishlistService{api: api}
}

// Toggle flips the membership of a product: present is removed, absent is
// added.
func (s *WishlistService) Toggle(ctx context.Context, productID string) error {
	return s.api.JSON(ctx, http.MethodPost, "/api/wishlist/"+productID, nil, nil, nil)
}

// List returns the product ids on the caller's wishlist.
func (s *WishlistService) List(ctx context.Context) ([]string, error) {
	var ids []string
	if err := s.api.JSON(ctx, http.MethodGet, "/api/wishlist", nil, nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
