package transport

import "github.com/mkravets/storefront/internal/models"

// Pagination is the list-response envelope metadata. HasMore is computed
// as offset+limit < total.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
	HasMore    bool  `json:"hasMore"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := (total + int64(limit) - 1) / int64(limit)
	offset := int64((page - 1) * limit)
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    offset+int64(limit) < total,
	}
}

type ListResponse struct {
	Items      any        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProviderLoginRequest is the payload handed over after a third-party
// identity provider flow. A role claim is deliberately absent: the role
// is always re-read from the users table.
type ProviderLoginRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Provider string `json:"provider"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	UserID      uint   `json:"user_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
}

type AddressSnapshot struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type CreateOrderItem struct {
	ProductID uint    `json:"product_id"`
	VariantID *uint   `json:"variant_id,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type CreateOrderRequest struct {
	Items           []CreateOrderItem `json:"items"`
	Tax             float64           `json:"tax"`
	Shipping        float64           `json:"shipping"`
	Discount        float64           `json:"discount"`
	PaymentMethod   string            `json:"payment_method"`
	DeliveryType    string            `json:"delivery_type"`
	ShippingAddress AddressSnapshot   `json:"shipping_address"`
}

type OrderItemResponse struct {
	ID         uint    `json:"id"`
	ProductID  uint    `json:"product_id"`
	VariantID  *uint   `json:"variant_id,omitempty"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
	ImageURL   string  `json:"image_url,omitempty"`
}

type OrderResponse struct {
	ID              uint                `json:"id"`
	OrderNumber     string              `json:"order_number"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"payment_status"`
	PaymentMethod   string              `json:"payment_method"`
	Subtotal        float64             `json:"subtotal"`
	Tax             float64             `json:"tax"`
	Shipping        float64             `json:"shipping"`
	Discount        float64             `json:"discount"`
	Total           float64             `json:"total"`
	DeliveryType    string              `json:"delivery_type"`
	ShippingAddress AddressSnapshot     `json:"shipping_address"`
	CreatedAt       string              `json:"created_at"`
	Items           []OrderItemResponse `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type ProductResponse struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Brand       string   `json:"brand"`
	Tags        []string `json:"tags"`
	Price       float64  `json:"price"`
	SalePrice   *float64 `json:"sale_price,omitempty"`
	Rating      float64  `json:"rating"`
	IsActive    bool     `json:"is_active"`
	CategoryID  uint     `json:"category_id"`
	ImageURL    string   `json:"image_url,omitempty"`
}

type CreateCategoryRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	ParentID  *uint  `json:"parent_id,omitempty"`
	SortOrder int    `json:"sort_order"`
}

type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Image *string `json:"image,omitempty"`
}

type CreateAddressRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	IsDefault  bool   `json:"is_default"`
}

type WishlistAddRequest struct {
	ProductID uint `json:"product_id"`
}

type ReorderImagesRequest struct {
	ImageIDs []uint `json:"image_ids"`
}

type UpdateSettingsRequest struct {
	Values map[string]string `json:"values"`
}

type CustomerSummary struct {
	ID         uint    `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	TotalSpent float64 `json:"total_spent"`
	CreatedAt  string  `json:"created_at"`
}

type CustomerDetail struct {
	ID                uint            `json:"id"`
	Email             string          `json:"email"`
	Name              string          `json:"name"`
	Image             string          `json:"image,omitempty"`
	Role              string          `json:"role"`
	CreatedAt         string          `json:"created_at"`
	TotalSpent        float64         `json:"total_spent"`
	OrderCount        int64           `json:"order_count"`
	AverageOrderValue float64         `json:"average_order_value"`
	RecentOrders      []OrderResponse  `json:"recent_orders"`
	RecentReviews     []models.Review  `json:"recent_reviews"`
	Addresses         []models.Address `json:"addresses"`
}
