package dal

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

var Q = new(Query)

// SetDefault binds the package level Q to db.
func SetDefault(db *gorm.DB) {
	*Q = *Use(db)
}

// Query is the entry point to the record store. A Query is cheap to derive;
// handlers derive one per request with WithContext.
type Query struct {
	db *gorm.DB

	Category  category
	Product   product
	Extra     extra
	Staff     staff
	Table     table
	Order     order
	OrderItem orderItem
}

func Use(db *gorm.DB) *Query {
	return &Query{
		db:        db,
		Category:  newCategory(db),
		Product:   newProduct(db),
		Extra:     newExtra(db),
		Staff:     newStaff(db),
		Table:     newTable(db),
		Order:     newOrder(db),
		OrderItem: newOrderItem(db),
	}
}

func (q *Query) clone(db *gorm.DB) *Query {
	return &Query{
		db:        db,
		Category:  q.Category.replaceDB(db),
		Product:   q.Product.replaceDB(db),
		Extra:     q.Extra.replaceDB(db),
		Staff:     q.Staff.replaceDB(db),
		Table:     q.Table.replaceDB(db),
		Order:     q.Order.replaceDB(db),
		OrderItem: q.OrderItem.replaceDB(db),
	}
}

// DaoOf returns the DAO for T on q's connection, for callers generic over the record type.
func DaoOf[T any](q *Query) *Dao[T] {
	d := newDao[T](q.db).replaceDB(q.db)
	return &d
}

// WithContext returns a Query whose statements run under ctx and share no
// statement state with q.
func (q *Query) WithContext(ctx context.Context) *Query {
	return q.clone(q.db.WithContext(ctx))
}

// ReadDB routes the returned Query's statements to the read replicas when
// any are registered, to the primary otherwise.
func (q *Query) ReadDB() *Query {
	return q.clone(q.db.Clauses(dbresolver.Read).Session(&gorm.Session{}))
}

// Transaction runs fn in a single database transaction, committed when fn returns nil.
func (q *Query) Transaction(fn func(tx *Query) error) error {
	return q.db.Transaction(func(tx *gorm.DB) error {
		return fn(q.clone(tx))
	})
}

// DB exposes the underlying gorm handle.
func (q *Query) DB() *gorm.DB {
	return q.db
}
