package models

// Payment methods accepted by the order service.
const (
	PaymentPayOnDelivery = "PAY_ON_DELIVERY"
	PaymentCardRedirect  = "CARD_REDIRECT"
)

// Order statuses the client knows about. The server owns transitions.
const (
	OrderPending   = "PENDING"
	OrderShipped   = "SHIPPED"
	OrderDelivered = "DELIVERED"
	OrderCancelled = "CANCELLED"
)

// OrderItem is a purchased product line.
type OrderItem struct {
	ProductID string  `json:"productId"`
	SellerID  string  `json:"sellerId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// ShippingAddress is the delivery destination collected at checkout.
type ShippingAddress struct {
	Street      string `json:"street"`
	City        string `json:"city"`
	Zip         string `json:"zip"`
	Country     string `json:"country"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Complete reports whether the required address fields are filled in.
func (a ShippingAddress) Complete() bool {
	return a.Street != "" && a.City != "" && a.Zip != "" && a.Country != ""
}

// Order is created client-side at checkout and immutable afterwards from the
// client's perspective. PaymentDetails is an opaque map owned by the server;
// for the card-redirect flow it carries the hosted checkout URL.
type Order struct {
	ID              string            `json:"id,omitempty"`
	UserID          string            `json:"userId"`
	CustomerEmail   string            `json:"customerEmail,omitempty"`
	Items           []OrderItem       `json:"items"`
	TotalAmount     float64           `json:"totalAmount"`
	Status          string            `json:"status,omitempty"`
	CreatedAt       string            `json:"createdAt,omitempty"`
	PaymentMethod   string            `json:"paymentMethod"`
	PaymentDetails  map[string]string `json:"paymentDetails,omitempty"`
	ShippingAddress ShippingAddress   `json:"shippingAddress"`
}

// RedirectURL returns the hosted checkout URL from the payment details, if
// the server provided one.
func (o Order) RedirectURL() string {
	for _, key := range []string{"redirectUrl", "stripeUrl"} {
		if url, ok := o.PaymentDetails[key]; ok && url != "" {
			return url
		}
	}
	return ""
}

// UserStats is the buyer dashboard summary.
type UserStats struct {
	TotalSpent      float64 `json:"totalSpent"`
	CompletedOrders int64   `json:"completedOrders"`
	TotalOrders     int     `json:"totalOrders"`
}

// SellerStats is the seller dashboard summary.
type SellerStats struct {
	TotalSales     float64 `json:"totalSales"`
	TotalItemsSold int     `json:"totalItemsSold"`
}
