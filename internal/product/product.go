// Package product models catalog entries priced at the register.
package product

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/checkout-pricing/internal/pricing"
	"github.com/noah-isme/checkout-pricing/internal/promotion"
)

// Product is a catalog entry. Products are shared by pointer so edits made
// after insertion are seen by every register pricing them.
type Product struct {
	name      string
	unitPrice pricing.Money
	byWeight  bool
	markdown  pricing.Money
	promotion promotion.Promotion
}

// Option customises a product at construction time.
type Option func(*Product)

// ByWeight marks the product as priced per pricing.WeightUnit.
func ByWeight() Option {
	return func(p *Product) {
		p.byWeight = true
	}
}

// New constructs a product priced per unit unless ByWeight is given.
func New(name string, unitPrice pricing.Money, opts ...Option) *Product {
	p := &Product{name: name, unitPrice: unitPrice}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Name is the inventory key.
func (p *Product) Name() string { return p.name }

// UnitPrice is the full price per unit, or per pricing.WeightUnit for weighed products.
func (p *Product) UnitPrice() pricing.Money { return p.unitPrice }

// ByWeight reports whether quantities are weights.
func (p *Product) ByWeight() bool { return p.byWeight }

// Markdown is the amount taken off the unit price.
func (p *Product) Markdown() pricing.Money { return p.markdown }

// SetMarkdown sets the amount taken off the unit price. Negative amounts are rejected.
func (p *Product) SetMarkdown(amount pricing.Money) bool {
	if amount < 0 {
		return false
	}
	p.markdown = amount
	return true
}

// EffectivePrice is the unit price less markdown. It is not clamped at zero.
func (p *Product) EffectivePrice() pricing.Money {
	return p.unitPrice - p.markdown
}

// AssignPromotion attaches promo, replacing any promotion already attached.
func (p *Product) AssignPromotion(promo promotion.Promotion) {
	p.promotion = promo
}

// ClearPromotion detaches the current promotion.
func (p *Product) ClearPromotion() {
	p.promotion = nil
}

// Promotion returns the attached promotion or nil.
func (p *Product) Promotion() promotion.Promotion {
	return p.promotion
}

// CostAt returns the exact cost of qty quantity units. Markdown is applied to
// the unit price before any promotion runs.
func (p *Product) CostAt(qty int64) decimal.Decimal {
	if qty <= 0 {
		return decimal.Zero
	}
	price := pricing.PerUnit(p.EffectivePrice(), p.byWeight)
	if p.promotion == nil {
		return price.Mul(decimal.NewFromInt(qty))
	}
	return p.promotion.Cost(price, qty)
}
