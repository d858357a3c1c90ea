package emit

import (
	"context"
	"fmt"

	"currency-registry/core/reconcile"

	"gorm.io/gorm"
)

const insertBatchSize = 200

// TableCounts reports how many rows the database emitter wrote.
type TableCounts struct {
	Records int `json:"records"`
	Links   int `json:"links"`
}

// Migrate creates or updates the registry tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&CurrencyRecord{}, &CurrencyCountry{}); err != nil {
		return fmt.Errorf("failed to migrate registry tables: %w", err)
	}
	return nil
}

// Replace swaps the table contents for the registry in one transaction.
func Replace(ctx context.Context, db *gorm.DB, reg *reconcile.Registry) (TableCounts, error) {
	records, links := tableRows(reg)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := wipe.Delete(&CurrencyCountry{}).Error; err != nil {
			return fmt.Errorf("failed to clear currency_countries: %w", err)
		}
		if err := wipe.Delete(&CurrencyRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear currency_records: %w", err)
		}

		if len(records) > 0 {
			if err := tx.CreateInBatches(records, insertBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert currency_records: %w", err)
			}
		}
		if len(links) > 0 {
			if err := tx.CreateInBatches(links, insertBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert currency_countries: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return TableCounts{}, err
	}

	return TableCounts{Records: len(records), Links: len(links)}, nil
}
