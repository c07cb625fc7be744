// Package catalog holds the static product data the storefront sells.
package catalog

import (
	"strconv"

	"github.com/youriscent/storefront/pkg/errors"
)

// SizeOption is one purchasable volume of a product.
type SizeOption struct {
	Volume string
	Price  int64
}

// Product is a catalog entry. Sizes are listed in display order.
type Product struct {
	ID          int
	Name        string
	Category    string
	Description string
	ImageRef    string
	Sizes       []SizeOption
}

var defaultSizes = []SizeOption{
	{Volume: "2ml", Price: 16000},
	{Volume: "5ml", Price: 35000},
	{Volume: "10ml", Price: 60000},
}

// Catalog is the set of products on offer.
type Catalog struct {
	products []Product
	byID     map[int]Product
}

// New builds a catalog from a product list.
func New(products []Product) *Catalog {
	byID := make(map[int]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Default returns the storefront's perfume catalog.
func Default() *Catalog {
	return New([]Product{
		{
			ID:          1,
			Name:        "Mykonos Sorrento",
			Category:    "Men's Fragrance",
			Description: "Aroma maskulin dengan campuran segar bergamot dan pedas lada",
			ImageRef:    "img/products/sorrento.jpeg",
			Sizes:       defaultSizes,
		},
		{
			ID:          2,
			Name:        "Chanel Coco Mademoiselle",
			Category:    "Women's Fragrance",
			Description: "Elegan dan feminin dengan sentuhan oriental yang sensual",
			ImageRef:    "img/products/chanel-coco.jpg",
			Sizes:       defaultSizes,
		},
		{
			ID:          3,
			Name:        "Tom Ford Oud Wood",
			Category:    "Unisex Fragrance",
			Description: "Aroma kayu oud eksotis dengan sentuhan vanilla yang hangat",
			ImageRef:    "img/products/tom-ford-oud.jpg",
			Sizes:       defaultSizes,
		},
	})
}

// Products returns the catalog in display order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Find looks up a product by id.
func (c *Catalog) Find(id int) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, &errors.ErrNotFound{Resource: "product", ID: strconv.Itoa(id)}
	}
	return p, nil
}

// Price returns the unit price of a product at a given size.
func (c *Catalog) Price(id int, size string) (int64, error) {
	p, err := c.Find(id)
	if err != nil {
		return 0, err
	}
	for _, s := range p.Sizes {
		if s.Volume == size {
			return s.Price, nil
		}
	}
	return 0, &errors.ErrNotFound{Resource: "size", ID: size}
}
