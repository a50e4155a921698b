package promotion

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

type bogoSpec struct {
	Purchase int64  `validate:"gt=0"`
	Discount int64  `validate:"gte=0"`
	Percent  int64  `validate:"gte=0,lte=100"`
	Limit    *int64 `validate:"omitempty,gt=0"`
}

// Bogo charges full price for every purchase quantity and discounts the
// following discount quantity by a percentage, repeating in cycles.
type Bogo struct {
	limitState
	purchase int64
	discount int64
	percent  int64
}

// NewBogo builds a buy purchase, get discount at percent off promotion.
func NewBogo(purchase, discount, percent int64, opts ...Option) (*Bogo, error) {
	o := collect(opts)
	if err := check(bogoSpec{Purchase: purchase, Discount: discount, Percent: percent, Limit: o.limit}); err != nil {
		return nil, err
	}
	b := &Bogo{purchase: purchase, discount: discount, percent: percent}
	if o.limit != nil {
		b.SetLimit(*o.limit)
	}
	return b, nil
}

// MustBogo is like NewBogo but panics on invalid input.
func MustBogo(purchase, discount, percent int64, opts ...Option) *Bogo {
	b, err := NewBogo(purchase, discount, percent, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Kind implements Promotion.
func (b *Bogo) Kind() Kind { return KindBogo }

// PurchaseQuantity is the number of full-price units in each cycle.
func (b *Bogo) PurchaseQuantity() int64 { return b.purchase }

// DiscountQuantity is the number of discounted units that follow them.
func (b *Bogo) DiscountQuantity() int64 { return b.discount }

// DiscountPercentage is the percentage taken off each discounted unit.
func (b *Bogo) DiscountPercentage() int64 { return b.percent }

// SetPurchaseQuantity rejects non-positive quantities.
func (b *Bogo) SetPurchaseQuantity(n int64) bool {
	if n <= 0 {
		return false
	}
	b.purchase = n
	return true
}

// SetDiscountQuantity rejects negative quantities.
func (b *Bogo) SetDiscountQuantity(n int64) bool {
	if n < 0 {
		return false
	}
	b.discount = n
	return true
}

// SetDiscountPercentage accepts values in [0, 100] and leaves the current
// percentage untouched otherwise.
func (b *Bogo) SetDiscountPercentage(p int64) bool {
	if p < 0 || p > 100 {
		return false
	}
	b.percent = p
	return true
}

// Cost implements Promotion.
func (b *Bogo) Cost(price decimal.Decimal, qty int64) decimal.Decimal {
	if qty <= 0 {
		return decimal.Zero
	}
	eligible, excess := b.split(qty)
	cycle := b.purchase + b.discount
	cycles := eligible / cycle
	rem := eligible % cycle

	full := cycles*b.purchase + min(rem, b.purchase)
	discounted := cycles*b.discount + max(0, rem-b.purchase)

	reduced := price.Mul(decimal.NewFromInt(100 - b.percent)).Div(hundred)
	return units(full+excess, price).Add(units(discounted, reduced))
}
