package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/nicgen/buy-02/apierror"
	"github.com/nicgen/buy-02/logger"
	"github.com/nicgen/buy-02/models"
)

// CheckoutService assembles an order from the cart and submits it. All
// validation happens before any network call.
type CheckoutService struct {
	cart   *CartService
	orders *OrderService
	auth   *AuthService
	nav    Navigator
}

func NewCheckoutService(cart *CartService, orders *OrderService, auth *AuthService, nav Navigator) *CheckoutService {
	return &CheckoutService{
		cart:   cart,
		orders: orders,
		auth:   auth,
		nav:    nav,
	}
}

// Checkout submits exactly one order for the current cart. On success the
// cart is cleared and the shopper lands on the order list; the card-redirect
// flow instead follows the hosted checkout URL with the cart intact until
// payment completes. On failure the cart is untouched and the error
// propagates to the caller.
func (s *CheckoutService) Checkout(ctx context.Context, paymentMethod string, address models.ShippingAddress) (models.Order, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return models.Order{}, apierror.ErrEmptyCart
	}
	if !s.auth.IsAuthenticated() {
		if s.nav != nil {
			s.nav.NavigateTo(RouteLogin)
		}
		return models.Order{}, apierror.ErrNotLoggedIn
	}
	if !address.Complete() {
		return models.Order{}, apierror.ErrIncompleteAddr
	}
	if paymentMethod == "" {
		paymentMethod = models.PaymentPayOnDelivery
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		sellerID := item.SellerID
		if sellerID == "" {
			sellerID = "unknown"
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ID,
			SellerID:  sellerID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	userID := s.auth.UserID()
	if userID == "" {
		userID = s.auth.CurrentUsername()
	}

	order := models.Order{
		UserID:          userID,
		Items:           orderItems,
		TotalAmount:     s.cart.Total(),
		PaymentMethod:   paymentMethod,
		PaymentDetails:  map[string]string{},
		ShippingAddress: address,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return models.Order{}, err
	}

	logger.Info("Order placed",
		zap.String("order_id", created.ID),
		zap.Float64("total", order.TotalAmount),
		zap.String("payment_method", paymentMethod),
	)

	if paymentMethod == models.PaymentCardRedirect {
		if url := created.RedirectURL(); url != "" {
			// Payment finishes on the hosted page; keep the cart until
			// the shopper returns.
			if s.nav != nil {
				s.nav.NavigateTo(url)
			}
			return created, nil
		}
	}

	s.cart.Clear()
	if s.nav != nil {
		s.nav.NavigateTo(RouteOrders)
	}
	return created, nil
}
