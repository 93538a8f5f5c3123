package util

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"reflect"
	"sync"
	"testing"

	"gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"restaurant_system/dal"
)

// DbMock For unit test usage
func DbMock(t *testing.T) (*sql.DB, *gorm.DB, sqlmock.Sqlmock) {
	sqldb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	gormdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqldb,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		t.Fatal(err)
	}

	dal.SetDefault(gormdb)

	return sqldb, gormdb, mock
}

// ObjectToRows For unit test usage. Columns are named the way gorm names them,
// so the rows scan back into the same record type.
func ObjectToRows(objects ...interface{}) (*sqlmock.Rows, error) {
	if len(objects) == 0 {
		return nil, gorm.ErrInvalidData
	}
	s, err := schema.Parse(objects[0], &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return nil, err
	}
	rows := sqlmock.NewRows(s.DBNames)
	for _, object := range objects {
		rv := reflect.Indirect(reflect.ValueOf(object))
		values := make([]driver.Value, 0, len(s.DBNames))
		for _, name := range s.DBNames {
			v, _ := s.FieldsByDBName[name].ValueOf(context.Background(), rv)
			values = append(values, toDriverValue(v))
		}
		rows.AddRow(values...)
	}
	return rows, nil
}

func toDriverValue(v interface{}) driver.Value {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		v = rv.Elem().Interface()
		rv = rv.Elem()
	}
	if valuer, ok := v.(driver.Valuer); ok {
		value, _ := valuer.Value()
		return value
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	}
	return v
}
