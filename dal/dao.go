package dal

import (
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gen/field"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restaurant_system/constants"
)

// Dao is the typed access object for one record type, a gen.DO bound to T.
// Where and Order start a new chain; terminal methods (Find, First, Create...) execute it.
type Dao[T any] struct {
	gen.DO
}

func newDao[T any](db *gorm.DB) Dao[T] {
	d := Dao[T]{}
	d.UseDB(db)
	d.UseModel(new(T))
	return d
}

func (d Dao[T]) replaceDB(db *gorm.DB) Dao[T] {
	d.ReplaceDB(db)
	return d
}

func (d Dao[T]) withDO(do gen.Dao) *Dao[T] {
	d.DO = *do.(*gen.DO)
	return &d
}

func (d Dao[T]) Where(conds ...gen.Condition) *Dao[T] {
	return d.withDO(d.DO.Where(conds...))
}

func (d Dao[T]) Order(columns ...field.Expr) *Dao[T] {
	return d.withDO(d.DO.Order(columns...))
}

// Find returns every matching record, an empty slice when none match.
func (d Dao[T]) Find() ([]*T, error) {
	result, err := d.DO.Find()
	if err != nil {
		return nil, err
	}
	records, _ := result.([]*T)
	if records == nil {
		records = make([]*T, 0)
	}
	return records, nil
}

// First returns the first match ordered by primary key.
func (d Dao[T]) First() (*T, error) {
	result, err := d.DO.First()
	if err != nil {
		return nil, translate(err)
	}
	return result.(*T), nil
}

// Take returns any one match.
func (d Dao[T]) Take() (*T, error) {
	result, err := d.DO.Take()
	if err != nil {
		return nil, translate(err)
	}
	return result.(*T), nil
}

// Get looks a record up by its primary key.
func (d Dao[T]) Get(id uint) (*T, error) {
	record := new(T)
	if err := d.UnderlyingDB().First(record, id).Error; err != nil {
		return nil, translate(err)
	}
	return record, nil
}

func (d Dao[T]) Create(value *T) error {
	return d.DO.Create(value)
}

// Replace overwrites every column of the stored row identified by value's
// primary key, zero values included. Associations are left alone.
func (d Dao[T]) Replace(value *T) (int64, error) {
	result := d.UnderlyingDB().Model(value).Select("*").Omit(clause.Associations).Updates(value)
	return result.RowsAffected, result.Error
}

// Update sets a single column on the rows matched by the chain. value may be
// a plain value or an expression over the row, such as a column increment.
func (d Dao[T]) Update(column field.Expr, value interface{}) (int64, error) {
	info, err := d.DO.Update(column, value)
	return info.RowsAffected, err
}

// Delete removes the rows identified by the values' primary keys.
func (d Dao[T]) Delete(values ...*T) (int64, error) {
	if len(values) == 0 {
		return 0, nil
	}
	info, err := d.DO.Delete(values)
	return info.RowsAffected, err
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return constants.ErrNotFound
	}
	return err
}
