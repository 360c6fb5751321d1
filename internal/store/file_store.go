// Package store persists the full product list to a single delimited
// text file. The file is rewritten wholesale on every save; there are no
// partial or incremental writes. Fields are quoted CSV, so names and
// categories may contain the delimiter, while files written without
// quoting still load unchanged.
package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/models"
)

// fieldCount is the fixed number of fields per record:
// name,id,category,quantity,price,min_stock,date.
const fieldCount = 7

// FileStore reads and writes the inventory store file. The underlying
// file handle is acquired and released within each call.
type FileStore struct {
	path       string
	maxRecords int
}

// NewFileStore creates a store over the given path. Load stops once
// maxRecords products have been read; zero or negative means unbounded.
func NewFileStore(path string, maxRecords int) *FileStore {
	return &FileStore{path: path, maxRecords: maxRecords}
}

// Save serializes every product, one CSV record per line, overwriting
// the entire store file.
func (s *FileStore) Save(products []models.Product) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("open store %s: %w", s.path, err)
	}

	w := csv.NewWriter(f)
	for _, p := range products {
		record := []string{
			p.Name,
			p.ID,
			p.Category,
			strconv.Itoa(p.Quantity),
			p.Price.StringFixed(2),
			strconv.Itoa(p.MinStock),
			p.Date,
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("write store %s: %w", s.path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write store %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close store %s: %w", s.path, err)
	}
	return nil
}

// Load reads the store line by line and returns the products that parse
// cleanly along with the number of skipped lines. A missing store file is
// a valid cold start: Load returns an empty list and no error. Lines that
// do not parse into exactly seven fields of the expected types are
// skipped and counted, never fatal.
func (s *FileStore) Load() ([]models.Product, int, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("open store %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var products []models.Product
	skipped := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		p, ok := parseRecord(record)
		if !ok {
			skipped++
			continue
		}
		products = append(products, p)
		if s.maxRecords > 0 && len(products) >= s.maxRecords {
			break
		}
	}
	return products, skipped, nil
}

// Truncate empties the store file, creating it if necessary.
func (s *FileStore) Truncate() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("truncate store %s: %w", s.path, err)
	}
	return f.Close()
}

func parseRecord(record []string) (models.Product, bool) {
	if len(record) != fieldCount {
		return models.Product{}, false
	}

	name, id, category, date := record[0], record[1], record[2], record[6]
	if name == "" || len(name) > models.MaxNameLen {
		return models.Product{}, false
	}
	if id == "" || len(id) > models.MaxIDLen {
		return models.Product{}, false
	}
	if len(category) > models.MaxCategoryLen || len(date) > models.MaxDateLen {
		return models.Product{}, false
	}

	quantity, err := strconv.Atoi(record[3])
	if err != nil || quantity < 0 {
		return models.Product{}, false
	}
	price, err := decimal.NewFromString(record[4])
	if err != nil || price.IsNegative() {
		return models.Product{}, false
	}
	minStock, err := strconv.Atoi(record[5])
	if err != nil || minStock < 0 {
		return models.Product{}, false
	}

	return models.Product{
		Name:     name,
		ID:       id,
		Category: category,
		Quantity: quantity,
		Price:    price,
		MinStock: minStock,
		Date:     date,
	}, true
}
