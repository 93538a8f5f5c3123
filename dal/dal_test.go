package dal_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"
	"gorm.io/gorm/logger"

	"restaurant_system/constants"
	"restaurant_system/custom/util"
	"restaurant_system/dal"
	"restaurant_system/model"
)

func TestSeed(t *testing.T) {
	sqlDB, gormDB, mock := util.DbMock(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`^INSERT INTO "categories" .+ ON CONFLICT DO NOTHING RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`^INSERT INTO "tables" .+ ON CONFLICT DO NOTHING RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`^INSERT INTO "products" .+ ON CONFLICT DO NOTHING RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	for _, table := range []string{"categories", "tables", "products"} {
		mock.ExpectExec(`^SELECT setval\(pg_get_serial_sequence\('` + table + `', 'id'\)`).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, dal.Seed(gormDB))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestSeedRollsBackOnFailure(t *testing.T) {
	sqlDB, gormDB, mock := util.DbMock(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`^INSERT INTO "categories"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`^INSERT INTO "tables"`).WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := dal.Seed(gormDB)
	assert.True(t, errors.Is(err, assert.AnError))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestGetTranslatesNotFound(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`^SELECT \* FROM "staff" WHERE "staff"\."id" = .+ LIMIT .+`).
		WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := dal.Q.WithContext(context.Background()).Staff.Get(7)
	assert.True(t, errors.Is(err, constants.ErrNotFound))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestFindReturnsEmptySlice(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`^SELECT \* FROM "extras" WHERE "extras"\."product_id" = .+ ORDER BY "extras"\."name"$`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	extras, err := dal.Q.Extra.Where(dal.Q.Extra.ProductID.Eq(3)).Order(dal.Q.Extra.Name).Find()
	require.NoError(t, err)
	assert.NotNil(t, extras)
	assert.Len(t, extras, 0)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestReplaceWritesZeroValues(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`^UPDATE "products" SET "name"=.+,"description"=.+,"price"=.+,"photo"=.+,"category_id"=.+ WHERE .+`).
		WithArgs("Água", nil, sqlmock.AnyArg(), nil, 0, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := dal.Q.Product.Replace(&model.Product{ID: 5, Name: "Água"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestDeleteByPrimaryKey(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`^DELETE FROM "tables" WHERE "tables"\."id" = .+`).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	affected, err := dal.Q.Table.Delete(&model.Table{ID: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestTransactionRollsBack(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`^INSERT INTO "categories"`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectRollback()

	err := dal.Q.Transaction(func(tx *dal.Query) error {
		if err := tx.Category.Create(&model.Category{Name: "Pizzas"}); err != nil {
			return err
		}
		return constants.ErrInvalidState
	})
	assert.True(t, errors.Is(err, constants.ErrInvalidState))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestReadDBWithoutReplicasUsesPrimary(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`^SELECT \* FROM "orders" WHERE "orders"\."end_time" IS NOT NULL$`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`^SELECT \* FROM "orders"$`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	read := dal.Q.ReadDB()
	_, err := read.Order.Where(read.Order.EndTime.IsNotNull()).Find()
	require.NoError(t, err)
	// conditions do not leak between statements of the same Query
	_, err = read.Order.Find()
	require.NoError(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestUpdateWithColumnExpression(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`^UPDATE "order_items" SET "quantity"="order_items"\."quantity"\+.+ WHERE "order_items"\."order_id" = .+`).
		WithArgs(3, 8).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	items := dal.Q.WithContext(context.Background()).OrderItem
	affected, err := items.Where(items.OrderID.Eq(8)).Update(items.Quantity, items.Quantity.Add(3))
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestFirstTranslatesNotFound(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`^SELECT \* FROM "categories" WHERE "categories"\."name" = .+ ORDER BY "categories"\."id" LIMIT .+`).
		WithArgs("Pizzas", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := dal.Q.Category.Where(dal.Q.Category.Name.Eq("Pizzas")).First()
	assert.True(t, errors.Is(err, constants.ErrNotFound))
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestDaoOfFollowsQueryConnection(t *testing.T) {
	sqlDB, _, mock := util.DbMock(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`^INSERT INTO "tables"`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectCommit()

	err := dal.Q.Transaction(func(tx *dal.Query) error {
		return dal.DaoOf[model.Table](tx).Create(&model.Table{Name: "Mesa 08"})
	})
	require.NoError(t, err)
	assert.Nil(t, mock.ExpectationsWereMet())
}

func TestOpenRejectsUnknownDialect(t *testing.T) {
	_, err := dal.Open(dal.DbConfig{Dialect: "sqlite"}, logger.Silent)
	assert.Error(t, err)
}
