package repo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/models"
)

// DefaultCapacity bounds the inventory when no explicit capacity is configured.
const DefaultCapacity = 1000

// idPrefix starts every generated product ID; the rest is a zero-padded
// numeric suffix.
const idPrefix = "P"

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository. Products are kept in insertion order and the list is
// bounded at a configurable capacity.
type InMemoryProductRepository struct {
	products []models.Product
	capacity int
}

// NewInMemoryProductRepository creates a new instance of
// InMemoryProductRepository bounded at the given capacity.
func NewInMemoryProductRepository(capacity int) *InMemoryProductRepository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &InMemoryProductRepository{
		products: []models.Product{},
		capacity: capacity,
	}
}

// Add appends a product at the end of the list. It fails with
// ErrInventoryFull at capacity and ErrDuplicateID when the ID is taken.
func (r *InMemoryProductRepository) Add(product models.Product) error {
	if len(r.products) >= r.capacity {
		return ErrInventoryFull
	}
	if r.IndexOf(product.ID) != -1 {
		return ErrDuplicateID
	}
	r.products = append(r.products, product)
	return nil
}

// GetAll retrieves all products in insertion order.
func (r *InMemoryProductRepository) GetAll() []models.Product {
	return r.products
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	if i := r.IndexOf(id); i != -1 {
		return r.products[i], nil
	}
	return models.Product{}, ErrProductNotFound
}

// IndexOf returns the position of the product with the given ID, or -1
// when no product matches. IDs are unique, so the first match is the only one.
func (r *InMemoryProductRepository) IndexOf(id string) int {
	for i, p := range r.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Update replaces the stored product carrying the same ID.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	i := r.IndexOf(product.ID)
	if i == -1 {
		return models.Product{}, ErrProductNotFound
	}
	r.products[i] = product
	return product, nil
}

// Delete removes a product by its ID, shifting later products one
// position left so insertion order is preserved without gaps.
func (r *InMemoryProductRepository) Delete(id string) error {
	i := r.IndexOf(id)
	if i == -1 {
		return ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

// Search returns, in storage order, every product whose name contains the
// keyword (case-insensitive) or whose ID matches it exactly.
func (r *InMemoryProductRepository) Search(keyword string) []models.Product {
	var matches []models.Product
	needle := strings.ToLower(keyword)
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), needle) || p.ID == keyword {
			matches = append(matches, p)
		}
	}
	return matches
}

// NextID derives the next product ID from the highest numeric suffix
// currently in use, so IDs freed by deletion are not reassigned. An
// empty inventory starts at P001.
func (r *InMemoryProductRepository) NextID() string {
	maxSuffix := 0
	for _, p := range r.products {
		if !strings.HasPrefix(p.ID, idPrefix) {
			continue
		}
		n, err := strconv.Atoi(p.ID[len(idPrefix):])
		if err != nil {
			continue
		}
		if n > maxSuffix {
			maxSuffix = n
		}
	}
	return fmt.Sprintf("%s%03d", idPrefix, maxSuffix+1)
}

// Replace installs a loaded product list wholesale, truncating at capacity.
func (r *InMemoryProductRepository) Replace(products []models.Product) {
	if len(products) > r.capacity {
		products = products[:r.capacity]
	}
	r.products = append([]models.Product{}, products...)
}

// Clear empties the repository.
func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}

// Count returns the number of stored products.
func (r *InMemoryProductRepository) Count() int {
	return len(r.products)
}
