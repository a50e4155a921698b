// Package inventory is the name-keyed product catalog a register prices against.
package inventory

import (
	"sort"

	"github.com/noah-isme/checkout-pricing/internal/product"
)

// Inventory maps product names to shared products.
type Inventory struct {
	products map[string]*product.Product
}

// New returns an empty inventory.
func New() *Inventory {
	return &Inventory{products: make(map[string]*product.Product)}
}

// Insert stores p under its name, replacing any product with the same name.
func (i *Inventory) Insert(p *product.Product) {
	if p == nil {
		return
	}
	if i.products == nil {
		i.products = make(map[string]*product.Product)
	}
	i.products[p.Name()] = p
}

// Retrieve looks up a product by name.
func (i *Inventory) Retrieve(name string) (*product.Product, bool) {
	if i == nil {
		return nil, false
	}
	p, ok := i.products[name]
	return p, ok
}

// Len reports the number of products.
func (i *Inventory) Len() int {
	if i == nil {
		return 0
	}
	return len(i.products)
}

// Names lists product names in sorted order.
func (i *Inventory) Names() []string {
	if i == nil {
		return nil
	}
	names := make([]string, 0, len(i.products))
	for name := range i.products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
