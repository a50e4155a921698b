// Package register implements a checkout session: a quantity ledger and a
// running total kept in step with the catalog's promotions.
package register

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/checkout-pricing/internal/inventory"
	"github.com/noah-isme/checkout-pricing/internal/pricing"
	"github.com/noah-isme/checkout-pricing/internal/product"
)

// NoWeight stands for a scan or removal made without a weight.
const NoWeight int64 = 0

const (
	opScan   = "scan"
	opRemove = "remove"
)

var (
	// ErrNoInventory is returned when no inventory has been assigned.
	ErrNoInventory = errors.New("no inventory assigned")
	// ErrUnknownProduct is returned when the product is not in the inventory.
	ErrUnknownProduct = errors.New("unknown product")
	// ErrWeightRequired is returned when a weighed product is handled without a positive weight.
	ErrWeightRequired = errors.New("weight required")
	// ErrInsufficientQuantity is returned when removing more than the register holds.
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	// ErrQuantityOverflow is returned when a scan would push a quantity past the ledger's range.
	ErrQuantityOverflow = errors.New("quantity overflow")
)

// Recorder observes register calls.
type Recorder interface {
	Observe(operation string, accepted bool, amount int64)
}

// Line is one ledger entry.
type Line struct {
	Name     string
	Quantity int64
}

// Register tracks scanned quantities and the running total for one session.
type Register struct {
	id         uuid.UUID
	inventory  *inventory.Inventory
	quantities map[string]int64
	total      pricing.Money
	logger     zerolog.Logger
	recorder   Recorder
}

// Option customises a Register.
type Option func(*Register)

// WithLogger sets the logger used for operation logs.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Register) {
		r.logger = logger
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(rec Recorder) Option {
	return func(r *Register) {
		r.recorder = rec
	}
}

// New returns a register with no inventory, an empty ledger and a zero total.
func New(opts ...Option) *Register {
	r := &Register{
		id:         uuid.New(),
		quantities: make(map[string]int64),
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.logger = r.logger.With().Str("session", r.id.String()).Logger()
	return r
}

// ID identifies the session.
func (r *Register) ID() uuid.UUID { return r.id }

// AssignInventory replaces the inventory. The ledger and total are kept.
func (r *Register) AssignInventory(inv *inventory.Inventory) {
	r.inventory = inv
}

// Inventory returns the assigned inventory or nil.
func (r *Register) Inventory() *inventory.Inventory {
	return r.inventory
}

// Quantity returns the quantity held for name, or 0.
func (r *Register) Quantity(name string) int64 {
	return r.quantities[name]
}

// Total returns the running total in minor units.
func (r *Register) Total() pricing.Money {
	return r.total
}

// Lines returns every ledger entry sorted by name, including zero quantities.
func (r *Register) Lines() []Line {
	lines := make([]Line, 0, len(r.quantities))
	for name, qty := range r.quantities {
		lines = append(lines, Line{Name: name, Quantity: qty})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Name < lines[j].Name })
	return lines
}

// ScanItem adds one unit of name, or weight units for weighed products, and
// reports whether the scan was accepted.
func (r *Register) ScanItem(name string, weight int64) bool {
	_, err := r.Scan(name, weight)
	return err == nil
}

// RemoveItem reverses a scan and reports whether the removal was accepted.
func (r *Register) RemoveItem(name string, weight int64) bool {
	_, err := r.Remove(name, weight)
	return err == nil
}

// Scan adds to the ledger and returns the amount added to the total. The
// weight is ignored for products not priced by weight.
func (r *Register) Scan(name string, weight int64) (pricing.Money, error) {
	p, err := r.lookup(name)
	if err != nil {
		return 0, r.reject(opScan, name, err)
	}
	delta := int64(1)
	if p.ByWeight() {
		if weight <= 0 {
			return 0, r.reject(opScan, name, ErrWeightRequired)
		}
		delta = weight
	}

	before := r.quantities[name]
	if delta > math.MaxInt64-before {
		return 0, r.reject(opScan, name, fmt.Errorf("%w: have %d, adding %d", ErrQuantityOverflow, before, delta))
	}
	after := before + delta
	amount := pricing.Marginal(p.CostAt(before), p.CostAt(after))

	r.quantities[name] = after
	r.total += amount
	r.accept(opScan, name, after, amount)
	return amount, nil
}

// Remove takes from the ledger and returns the amount taken off the total.
// Removal undoes exactly what the matching scans added, including discounts
// that no longer apply at the lower quantity.
func (r *Register) Remove(name string, weight int64) (pricing.Money, error) {
	p, err := r.lookup(name)
	if err != nil {
		return 0, r.reject(opRemove, name, err)
	}
	before := r.quantities[name]
	delta := int64(1)
	if p.ByWeight() {
		if weight <= 0 {
			return 0, r.reject(opRemove, name, ErrWeightRequired)
		}
		delta = weight
	}
	if delta > before {
		return 0, r.reject(opRemove, name, fmt.Errorf("%w: have %d, removing %d", ErrInsufficientQuantity, before, delta))
	}

	after := before - delta
	amount := pricing.Marginal(p.CostAt(after), p.CostAt(before))

	r.quantities[name] = after
	r.total -= amount
	r.accept(opRemove, name, after, amount)
	return amount, nil
}

func (r *Register) lookup(name string) (*product.Product, error) {
	if r.inventory == nil {
		return nil, ErrNoInventory
	}
	p, ok := r.inventory.Retrieve(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, name)
	}
	return p, nil
}

func (r *Register) accept(op, name string, qty int64, amount pricing.Money) {
	if r.recorder != nil {
		r.recorder.Observe(op, true, amount)
	}
	r.logger.Debug().
		Str("op", op).
		Str("product", name).
		Int64("quantity", qty).
		Int64("delta", amount).
		Int64("total", r.total).
		Msg("register_update")
}

func (r *Register) reject(op, name string, err error) error {
	if r.recorder != nil {
		r.recorder.Observe(op, false, 0)
	}
	r.logger.Debug().
		Str("op", op).
		Str("product", name).
		Err(err).
		Msg("register_rejected")
	return err
}
