package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleUser    = "USER"
	RoleManager = "MANAGER"
	RoleAdmin   = "ADMIN"
)

const (
	OrderStatusPending    = "PENDING"
	OrderStatusConfirmed  = "CONFIRMED"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

const (
	PaymentStatusPending  = "PENDING"
	PaymentStatusPaid     = "PAID"
	PaymentStatusFailed   = "FAILED"
	PaymentStatusRefunded = "REFUNDED"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	Name         string    `gorm:"not null"                 json:"name"`
	PasswordHash string    `json:"-"`
	Image        string    `json:"image,omitempty"`
	Provider     string    `json:"-"`
	Role         string    `gorm:"not null;default:USER"    json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Addresses []Address `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Address struct {
	ID         uint      `gorm:"primaryKey"     json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	Name       string    `gorm:"not null"       json:"name"`
	Phone      string    `json:"phone"`
	Line1      string    `gorm:"not null"       json:"line1"`
	Line2      string    `json:"line2,omitempty"`
	City       string    `gorm:"not null"       json:"city"`
	State      string    `json:"state"`
	PostalCode string    `gorm:"not null"       json:"postal_code"`
	Country    string    `gorm:"not null"       json:"country"`
	IsDefault  bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey"            json:"id"`
	Name      string    `gorm:"not null"              json:"name"`
	Slug      string    `gorm:"uniqueIndex;not null"  json:"slug"`
	ParentID  *uint     `gorm:"index"                 json:"parent_id,omitempty"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	SortOrder int       `gorm:"not null;default:0"    json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID          uint                `gorm:"primaryKey"            json:"id"`
	Name        string              `gorm:"not null"              json:"name"`
	Slug        string              `gorm:"uniqueIndex;not null"  json:"slug"`
	Description string              `json:"description"`
	Brand       string              `json:"brand"`
	Tags        string              `json:"tags"`
	Price       decimal.Decimal     `gorm:"type:numeric(12,2);not null" json:"-"`
	SalePrice   decimal.NullDecimal `gorm:"type:numeric(12,2)"    json:"-"`
	Rating      float64             `gorm:"not null;default:0"    json:"rating"`
	IsActive    bool                `gorm:"not null;default:true" json:"is_active"`
	CategoryID  uint                `gorm:"index;not null"        json:"category_id"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`

	Images   []ProductImage   `gorm:"constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Variants []ProductVariant `gorm:"constraint:OnDelete:CASCADE" json:"variants,omitempty"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey"     json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	URL       string `gorm:"not null"       json:"url"`
	Alt       string `json:"alt"`
	IsPrimary bool   `gorm:"not null;default:false" json:"is_primary"`
	SortOrder int    `gorm:"not null;default:0"     json:"sort_order"`
}

type ProductVariant struct {
	ID        uint   `gorm:"primaryKey"            json:"id"`
	ProductID uint   `gorm:"index;not null"        json:"product_id"`
	SKU       string `gorm:"uniqueIndex;not null"  json:"sku"`
	Name      string `gorm:"not null"              json:"name"`
	Stock     int    `gorm:"not null;default:0"    json:"stock"`
	IsActive  bool   `gorm:"not null;default:true" json:"is_active"`
}

type Order struct {
	ID            uint            `gorm:"primaryKey"               json:"id"`
	OrderNumber   string          `gorm:"uniqueIndex;not null"     json:"order_number"`
	UserID        uint            `gorm:"index;not null"           json:"user_id"`
	Status        string          `gorm:"not null;default:PENDING" json:"status"`
	PaymentStatus string          `gorm:"not null;default:PENDING" json:"payment_status"`
	PaymentMethod string          `json:"payment_method"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"-"`
	Tax           decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"-"`
	Shipping      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"-"`
	Discount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"-"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"-"`
	DeliveryType  string          `json:"delivery_type"`

	// Shipping address snapshot, copied at checkout so later address
	// edits do not rewrite order history.
	ShipName       string `json:"ship_name"`
	ShipPhone      string `json:"ship_phone"`
	ShipLine1      string `json:"ship_line1"`
	ShipLine2      string `json:"ship_line2,omitempty"`
	ShipCity       string `json:"ship_city"`
	ShipState      string `json:"ship_state"`
	ShipPostalCode string `json:"ship_postal_code"`
	ShipCountry    string `json:"ship_country"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type OrderItem struct {
	ID         uint            `gorm:"primaryKey"     json:"id"`
	OrderID    uint            `gorm:"index;not null" json:"order_id"`
	ProductID  uint            `gorm:"not null"       json:"product_id"`
	VariantID  *uint           `json:"variant_id,omitempty"`
	Quantity   int             `gorm:"not null;check:quantity>0"   json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"-"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"-"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey"     json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ProductID uint      `gorm:"index;not null" json:"product_id"`
	Rating    int       `gorm:"not null"       json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Setting struct {
	ID    uint   `gorm:"primaryKey"           json:"-"`
	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Value string `gorm:"not null"             json:"value"`
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{
		&User{}, &Address{}, &Category{}, &Product{}, &ProductImage{},
		&ProductVariant{}, &Order{}, &OrderItem{}, &Review{},
		&WishlistItem{}, &Setting{},
	}
}
