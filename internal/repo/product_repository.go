package repo

import "github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/models"

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Add(product models.Product) error
	GetAll() []models.Product
	GetByID(id string) (models.Product, error)
	IndexOf(id string) int
	Update(product models.Product) (models.Product, error)
	Delete(id string) error
	Search(keyword string) []models.Product
	NextID() string
	Replace(products []models.Product)
	Clear()
	Count() int
}
