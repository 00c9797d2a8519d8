// Package catalog serves the static, read-only product list the storefront is
// built around. Products are embedded at build time; there is no mutation
// interface.
package catalog

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/rajeev06code/thekua/models"
)

//go:embed products.json
var productsJSON []byte

//go:embed testimonials.json
var testimonialsJSON []byte

type Catalog struct {
	products     []models.Product
	byID         map[string]models.Product
	testimonials []models.Testimonial
}

func Load() (*Catalog, error) {
	var products []models.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, err
	}
	var testimonials []models.Testimonial
	if err := json.Unmarshal(testimonialsJSON, &testimonials); err != nil {
		return nil, err
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID, testimonials: testimonials}, nil
}

// Filter narrows the product list. Zero values leave a dimension unfiltered.
type Filter struct {
	Search   string
	Category models.Category
	Tag      string
	PackSize string
	MinPrice *float64
	MaxPrice *float64
}

func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) ByID(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) Testimonials() []models.Testimonial {
	out := make([]models.Testimonial, len(c.testimonials))
	copy(out, c.testimonials)
	return out
}

// Find returns the products matching every set filter dimension, preserving
// catalog order.
func (c *Catalog) Find(f Filter) []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Product, f Filter) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Tag != "" && !contains(p.Tags, f.Tag) {
		return false
	}
	if f.PackSize != "" && !contains(p.PackSizes, f.PackSize) {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
