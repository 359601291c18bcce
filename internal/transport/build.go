package transport

import (
	"strings"
	"time"

	"github.com/mkravets/storefront/internal/models"
)

// Builders translate stored models into wire shapes. Monetary values stay
// decimal until this point and become plain numbers only here.

func BuildOrderResponse(o models.Order, images map[uint]string) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ID:         it.ID,
			ProductID:  it.ProductID,
			VariantID:  it.VariantID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice.InexactFloat64(),
			TotalPrice: it.TotalPrice.InexactFloat64(),
			ImageURL:   images[it.ProductID],
		}
	}

	return OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		PaymentMethod: o.PaymentMethod,
		Subtotal:      o.Subtotal.InexactFloat64(),
		Tax:           o.Tax.InexactFloat64(),
		Shipping:      o.Shipping.InexactFloat64(),
		Discount:      o.Discount.InexactFloat64(),
		Total:         o.Total.InexactFloat64(),
		DeliveryType:  o.DeliveryType,
		ShippingAddress: AddressSnapshot{
			Name:       o.ShipName,
			Phone:      o.ShipPhone,
			Line1:      o.ShipLine1,
			Line2:      o.ShipLine2,
			City:       o.ShipCity,
			State:      o.ShipState,
			PostalCode: o.ShipPostalCode,
			Country:    o.ShipCountry,
		},
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
		Items:     items,
	}
}

func BuildProductResponse(p models.Product, imageURL string) ProductResponse {
	var tags []string
	for _, t := range strings.Split(p.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}

	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Brand:       p.Brand,
		Tags:        tags,
		Price:       p.Price.InexactFloat64(),
		Rating:      p.Rating,
		IsActive:    p.IsActive,
		CategoryID:  p.CategoryID,
		ImageURL:    imageURL,
	}
	if p.SalePrice.Valid {
		v := p.SalePrice.Decimal.InexactFloat64()
		resp.SalePrice = &v
	}

	if resp.ImageURL == "" {
		for _, img := range p.Images {
			if img.IsPrimary {
				resp.ImageURL = img.URL
				break
			}
		}
	}
	return resp
}

func BuildCustomerSummary(u models.User, totalSpent float64) CustomerSummary {
	return CustomerSummary{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		TotalSpent: totalSpent,
		CreatedAt:  u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
