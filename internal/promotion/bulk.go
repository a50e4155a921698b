package promotion

import (
	"github.com/shopspring/decimal"

	"github.com/noah-isme/checkout-pricing/internal/pricing"
)

type bulkSpec struct {
	Purchase int64  `validate:"gt=0"`
	Price    int64  `validate:"gte=0"`
	Limit    *int64 `validate:"omitempty,gt=0"`
}

// Bulk sells every complete group of purchase units for a fixed price.
type Bulk struct {
	limitState
	purchase int64
	price    pricing.Money
}

// NewBulk builds a buy purchase for price promotion.
func NewBulk(purchase int64, price pricing.Money, opts ...Option) (*Bulk, error) {
	o := collect(opts)
	if err := check(bulkSpec{Purchase: purchase, Price: price, Limit: o.limit}); err != nil {
		return nil, err
	}
	b := &Bulk{purchase: purchase, price: price}
	if o.limit != nil {
		b.SetLimit(*o.limit)
	}
	return b, nil
}

// MustBulk is like NewBulk but panics on invalid input.
func MustBulk(purchase int64, price pricing.Money, opts ...Option) *Bulk {
	b, err := NewBulk(purchase, price, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Kind implements Promotion.
func (b *Bulk) Kind() Kind { return KindBulk }

// PurchaseQuantity is the number of units in one group.
func (b *Bulk) PurchaseQuantity() int64 { return b.purchase }

// DiscountPrice is the price charged for one complete group.
func (b *Bulk) DiscountPrice() pricing.Money { return b.price }

// SetPurchaseQuantity rejects non-positive quantities.
func (b *Bulk) SetPurchaseQuantity(n int64) bool {
	if n <= 0 {
		return false
	}
	b.purchase = n
	return true
}

// SetDiscountPrice rejects negative prices.
func (b *Bulk) SetDiscountPrice(p pricing.Money) bool {
	if p < 0 {
		return false
	}
	b.price = p
	return true
}

// Cost implements Promotion.
func (b *Bulk) Cost(price decimal.Decimal, qty int64) decimal.Decimal {
	if qty <= 0 {
		return decimal.Zero
	}
	eligible, excess := b.split(qty)
	groups := eligible / b.purchase
	rem := eligible % b.purchase

	grouped := decimal.NewFromInt(groups * b.price)
	return grouped.Add(units(rem+excess, price))
}
