package dal

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/romana/rlog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restaurant_system/model"
)

// Seed inserts the reference catalog. Rows whose ids already exist are left
// untouched, so Seed can run on every start.
func Seed(db *gorm.DB) error {
	categories := append([]model.Category(nil), model.SeedCategories...)
	tables := append([]model.Table(nil), model.SeedTables...)
	products := append([]model.Product(nil), model.SeedProducts...)

	err := db.Transaction(func(tx *gorm.DB) error {
		skipExisting := func() *gorm.DB {
			return tx.Clauses(clause.OnConflict{DoNothing: true})
		}
		if err := skipExisting().Create(&categories).Error; err != nil {
			return errors.Wrap(err, "seed categories")
		}
		if err := skipExisting().Create(&tables).Error; err != nil {
			return errors.Wrap(err, "seed tables")
		}
		if err := skipExisting().Create(&products).Error; err != nil {
			return errors.Wrap(err, "seed products")
		}
		if tx.Dialector.Name() == DIALECT_POSTGRES {
			// explicit ids do not move identity sequences
			for _, table := range []string{"categories", "tables", "products"} {
				stmt := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM "%s"))`, table, table)
				if err := tx.Exec(stmt).Error; err != nil {
					return errors.Wrapf(err, "advance %s sequence", table)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	rlog.Infof("Seeded %d categories, %d tables, %d products", len(categories), len(tables), len(products))
	return nil
}
