package storage

import (
	"context"
	"fmt"
	"log"

	"procurement-backend/models"

	"gorm.io/gorm"
)

// MySQLStore keeps the ledger in an orders table. The auto-increment
// id preserves append order, so fetching by id ascending returns the
// same sequence a worksheet would.
type MySQLStore struct {
	db *gorm.DB
}

func NewMySQLStore(db *gorm.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// FetchAll returns every ledger row in append order.
func (s *MySQLStore) FetchAll(ctx context.Context) ([]models.Record, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&orders).Error; err != nil {
		log.Printf("[ERROR] MySQL access failed: %v", err)
		return nil, &StoreError{Backend: "MySQL", Err: err}
	}
	records := make([]models.Record, 0, len(orders))
	for _, order := range orders {
		records = append(records, order.Record())
	}
	return records, nil
}

// Append inserts one row built from the positional column values.
func (s *MySQLStore) Append(ctx context.Context, row []interface{}) error {
	order, err := orderFromRow(row)
	if err != nil {
		return &StoreError{Backend: "MySQL", Err: err}
	}
	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		log.Printf("[ERROR] MySQL access failed: %v", err)
		return &StoreError{Backend: "MySQL", Err: err}
	}
	return nil
}

// Ping checks the underlying connection.
func (s *MySQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return &StoreError{Backend: "MySQL", Err: err}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return &StoreError{Backend: "MySQL", Err: err}
	}
	return nil
}

// orderFromRow rebuilds an Order from values laid out in the fixed
// column order.
func orderFromRow(row []interface{}) (models.Order, error) {
	if len(row) != len(models.OrderColumns) {
		return models.Order{}, fmt.Errorf("row has %d values, want %d", len(row), len(models.OrderColumns))
	}
	rec := make(models.Record, len(row))
	for i, name := range models.OrderColumns {
		rec[name] = row[i]
	}
	return models.OrderFromRecord(rec)
}
