// Package catalogfile loads an inventory from a YAML product list.
package catalogfile

import (
	"errors"
	"fmt"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/noah-isme/checkout-pricing/internal/inventory"
	"github.com/noah-isme/checkout-pricing/internal/product"
	"github.com/noah-isme/checkout-pricing/internal/promotion"
)

// ErrInvalidEntry is returned when a catalog entry fails validation.
var ErrInvalidEntry = errors.New("invalid catalog entry")

// Document is the root of a catalog file.
type Document struct {
	Products []Entry `koanf:"products" validate:"dive"`
}

// Entry describes one product.
type Entry struct {
	Name      string          `koanf:"name" validate:"required"`
	Price     int64           `koanf:"price" validate:"gte=0"`
	ByWeight  bool            `koanf:"by_weight"`
	Markdown  int64           `koanf:"markdown" validate:"gte=0"`
	Promotion *PromotionEntry `koanf:"promotion"`
}

// PromotionEntry describes a product's promotion. Limit 0 means no limit.
type PromotionEntry struct {
	Kind     string `koanf:"kind" validate:"required,oneof=BOGO BULK bogo bulk"`
	Purchase int64  `koanf:"purchase"`
	Discount int64  `koanf:"discount"`
	Percent  int64  `koanf:"percent"`
	Price    int64  `koanf:"price"`
	Limit    int64  `koanf:"limit" validate:"gte=0"`
}

var validate = validator.New()

// Load reads and validates the catalog file at path.
func Load(path string) (*inventory.Inventory, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	var doc Document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return Build(doc.Products)
}

// Build validates entries and assembles an inventory from them. Later entries
// replace earlier ones with the same name.
func Build(entries []Entry) (*inventory.Inventory, error) {
	if err := validate.Struct(Document{Products: entries}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	inv := inventory.New()
	for _, e := range entries {
		p, err := e.product()
		if err != nil {
			return nil, err
		}
		inv.Insert(p)
	}
	return inv, nil
}

func (e Entry) product() (*product.Product, error) {
	var opts []product.Option
	if e.ByWeight {
		opts = append(opts, product.ByWeight())
	}
	p := product.New(e.Name, e.Price, opts...)
	if !p.SetMarkdown(e.Markdown) {
		return nil, fmt.Errorf("%w: %s: markdown %d", ErrInvalidEntry, e.Name, e.Markdown)
	}
	if e.Promotion == nil {
		return p, nil
	}
	promo, err := e.Promotion.build()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidEntry, e.Name, err)
	}
	p.AssignPromotion(promo)
	return p, nil
}

func (pe PromotionEntry) build() (promotion.Promotion, error) {
	var opts []promotion.Option
	if pe.Limit > 0 {
		opts = append(opts, promotion.WithLimit(pe.Limit))
	}
	switch promotion.Kind(strings.ToUpper(pe.Kind)) {
	case promotion.KindBogo:
		return promotion.NewBogo(pe.Purchase, pe.Discount, pe.Percent, opts...)
	case promotion.KindBulk:
		return promotion.NewBulk(pe.Purchase, pe.Price, opts...)
	default:
		return nil, fmt.Errorf("unknown promotion kind %q", pe.Kind)
	}
}
