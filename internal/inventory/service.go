// Package inventory implements the CRUD engine: every mutation validates
// its input, applies the change to the in-memory repository, persists the
// whole inventory, and records an audit line. The in-memory list is the
// single source of truth; if persisting fails the mutation is rolled
// back, so memory never silently diverges from the store.
package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/changelog"
	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/models"
	"github.com/SebastienPengdwende/PROJECT-PYTHON-C/internal/repo"
)

// ErrSaveFailed is returned when a mutation could not be persisted. The
// in-memory change has been rolled back by the time it is returned.
var ErrSaveFailed = errors.New("inventory could not be saved")

// Store persists the full product list.
type Store interface {
	Save(products []models.Product) error
	Load() ([]models.Product, int, error)
	Truncate() error
}

// ChangeLog records mutations and reads back the most recent entries.
type ChangeLog interface {
	Append(action changelog.Action, before, after *models.Product) error
	Recent(n int) ([]string, error)
	Truncate() error
}

// ProductUpdate carries the optional field changes for Modify. Empty
// strings and nil numeric fields keep the current values; so does a
// negative value behind a numeric pointer.
type ProductUpdate struct {
	Name     string
	Category string
	Quantity *int
	Price    *decimal.Decimal
	MinStock *int
}

// Service coordinates the repository, the store and the change log.
type Service struct {
	repo     repo.ProductRepository
	store    Store
	log      ChangeLog
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewService wires a CRUD engine over the given repository, store and
// change log. A nil logger falls back to the logrus standard logger.
func NewService(r repo.ProductRepository, store Store, log ChangeLog, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		repo:     r,
		store:    store,
		log:      log,
		validate: models.NewValidator(),
		logger:   logger,
	}
}

// Hydrate loads the store into the repository. A missing store file is a
// valid cold start. The number of skipped malformed lines is returned so
// the caller can surface it.
func (s *Service) Hydrate() (int, error) {
	products, skipped, err := s.store.Load()
	if err != nil {
		return 0, err
	}
	s.repo.Replace(products)
	if skipped > 0 {
		s.logger.WithField("skipped_lines", skipped).Warn("ignored malformed store lines")
	}
	return skipped, nil
}

// Add assigns the next free ID to the draft, validates it, appends it to
// the inventory and persists. The ADDED audit line is written only after
// a successful save.
func (s *Service) Add(draft models.Product) (models.Product, error) {
	draft.ID = s.repo.NextID()
	if draft.Date == "" {
		draft.Date = time.Now().Format(models.DateLayout)
	}
	if err := s.validate.Struct(draft); err != nil {
		return models.Product{}, err
	}

	if err := s.repo.Add(draft); err != nil {
		return models.Product{}, err
	}
	if err := s.persist(func() { _ = s.repo.Delete(draft.ID) }); err != nil {
		return models.Product{}, err
	}

	s.record(changelog.ActionAdded, nil, &draft)
	return draft, nil
}

// Modify applies the non-empty fields of changes to the product with the
// given ID. The ID and the creation date are never touched.
func (s *Service) Modify(id string, changes ProductUpdate) (models.Product, error) {
	original, err := s.repo.GetByID(id)
	if err != nil {
		return models.Product{}, err
	}

	updated := original
	if changes.Name != "" {
		updated.Name = changes.Name
	}
	if changes.Category != "" {
		updated.Category = changes.Category
	}
	if changes.Quantity != nil && *changes.Quantity >= 0 {
		updated.Quantity = *changes.Quantity
	}
	if changes.Price != nil && !changes.Price.IsNegative() {
		updated.Price = *changes.Price
	}
	if changes.MinStock != nil && *changes.MinStock >= 0 {
		updated.MinStock = *changes.MinStock
	}

	if err := s.validate.Struct(updated); err != nil {
		return models.Product{}, err
	}
	if _, err := s.repo.Update(updated); err != nil {
		return models.Product{}, err
	}
	if err := s.persist(func() { _, _ = s.repo.Update(original) }); err != nil {
		return models.Product{}, err
	}

	s.record(changelog.ActionModified, &original, &updated)
	return updated, nil
}

// Delete removes the product with the given ID. Confirmation is the
// caller's concern; reaching this method always mutates.
func (s *Service) Delete(id string) (models.Product, error) {
	removed, err := s.repo.GetByID(id)
	if err != nil {
		return models.Product{}, err
	}

	snapshot := s.snapshot()
	if err := s.repo.Delete(id); err != nil {
		return models.Product{}, err
	}
	if err := s.persist(func() { s.repo.Replace(snapshot) }); err != nil {
		return models.Product{}, err
	}

	s.record(changelog.ActionDeleted, &removed, nil)
	return removed, nil
}

// Reset clears the inventory and truncates both the store and the change
// log. It is unconditional; any confirmation gate lives in the caller.
func (s *Service) Reset() error {
	s.repo.Clear()
	if err := s.store.Truncate(); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	if err := s.log.Truncate(); err != nil {
		return fmt.Errorf("truncate change log: %w", err)
	}
	return nil
}

// Products returns all products in storage order.
func (s *Service) Products() []models.Product {
	return s.repo.GetAll()
}

// Get returns the product with the given ID.
func (s *Service) Get(id string) (models.Product, error) {
	return s.repo.GetByID(id)
}

// Search returns every product whose name contains the keyword or whose
// ID matches it exactly, in storage order.
func (s *Service) Search(keyword string) []models.Product {
	return s.repo.Search(keyword)
}

// Count returns the number of products in the inventory.
func (s *Service) Count() int {
	return s.repo.Count()
}

// RecentChanges returns up to the last n change-log lines in
// chronological order.
func (s *Service) RecentChanges(n int) ([]string, error) {
	return s.log.Recent(n)
}

// persist saves the full inventory, invoking rollback and returning
// ErrSaveFailed when the write fails.
func (s *Service) persist(rollback func()) error {
	if err := s.store.Save(s.repo.GetAll()); err != nil {
		rollback()
		s.logger.WithError(err).Error("inventory save failed, mutation rolled back")
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

// record appends an audit line. Logging is best-effort and never fails
// the mutation that triggered it.
func (s *Service) record(action changelog.Action, before, after *models.Product) {
	if err := s.log.Append(action, before, after); err != nil {
		s.logger.WithError(err).Warn("change log append failed")
	}
}

func (s *Service) snapshot() []models.Product {
	return append([]models.Product(nil), s.repo.GetAll()...)
}
