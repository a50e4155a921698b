// Package promotion holds the per-product discount rules applied at the
// register and their cost functions.
package promotion

import (
	"errors"
	"fmt"

	validator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Kind labels a promotion variant.
type Kind string

const (
	// KindBogo is a buy N, get M at X percent off promotion.
	KindBogo Kind = "BOGO"
	// KindBulk is a buy N for a fixed price promotion.
	KindBulk Kind = "BULK"
)

// ErrInvalidPromotion is returned when a promotion is constructed with out-of-range values.
var ErrInvalidPromotion = errors.New("invalid promotion")

// Promotion prices a quantity of a single product.
type Promotion interface {
	// Cost returns the exact, unrounded price of qty units when one unit costs price.
	Cost(price decimal.Decimal, qty int64) decimal.Decimal
	// Kind reports the promotion variant.
	Kind() Kind
	// Limit reports the maximum quantity that may ever benefit from the promotion.
	Limit() (int64, bool)
}

// Option customises a promotion at construction time.
type Option func(*options)

type options struct {
	limit *int64
}

// WithLimit caps the quantity eligible for the promotion. Quantity beyond the
// cap is charged at full price.
func WithLimit(n int64) Option {
	return func(o *options) {
		o.limit = &n
	}
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

var validate = validator.New()

func check(spec any) error {
	if err := validate.Struct(spec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s must satisfy %s=%s", ErrInvalidPromotion, fe.Field(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("%w: %v", ErrInvalidPromotion, err)
	}
	return nil
}

// limitState is shared by both variants.
type limitState struct {
	limit int64
	set   bool
}

// Limit reports the eligibility cap, if any.
func (l *limitState) Limit() (int64, bool) {
	return l.limit, l.set
}

// SetLimit sets the eligibility cap. Non-positive values are rejected.
func (l *limitState) SetLimit(n int64) bool {
	if n <= 0 {
		return false
	}
	l.limit = n
	l.set = true
	return true
}

// ClearLimit removes the eligibility cap.
func (l *limitState) ClearLimit() {
	l.limit = 0
	l.set = false
}

// split divides qty into the portion eligible for the promotion and the excess
// that is always charged at full price.
func (l *limitState) split(qty int64) (eligible, excess int64) {
	if l.set && qty > l.limit {
		return l.limit, qty - l.limit
	}
	return qty, 0
}

func units(n int64, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(n))
}
