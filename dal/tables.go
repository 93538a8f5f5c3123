package dal

import (
	"gorm.io/gen/field"
	"gorm.io/gorm"

	"restaurant_system/model"
)

type category struct {
	Dao[model.Category]

	ALL  field.Asterisk
	ID   field.Uint
	Name field.String
}

func newCategory(db *gorm.DB) category {
	_category := category{Dao: newDao[model.Category](db)}

	tableName := _category.TableName()
	_category.ALL = field.NewAsterisk(tableName)
	_category.ID = field.NewUint(tableName, "id")
	_category.Name = field.NewString(tableName, "name")
	return _category
}

func (c category) replaceDB(db *gorm.DB) category {
	c.Dao = c.Dao.replaceDB(db)
	return c
}

type product struct {
	Dao[model.Product]

	ALL         field.Asterisk
	ID          field.Uint
	Name        field.String
	Description field.String
	Price       field.Field
	Photo       field.String
	CategoryID  field.Uint
}

func newProduct(db *gorm.DB) product {
	_product := product{Dao: newDao[model.Product](db)}

	tableName := _product.TableName()
	_product.ALL = field.NewAsterisk(tableName)
	_product.ID = field.NewUint(tableName, "id")
	_product.Name = field.NewString(tableName, "name")
	_product.Description = field.NewString(tableName, "description")
	_product.Price = field.NewField(tableName, "price")
	_product.Photo = field.NewString(tableName, "photo")
	_product.CategoryID = field.NewUint(tableName, "category_id")
	return _product
}

func (p product) replaceDB(db *gorm.DB) product {
	p.Dao = p.Dao.replaceDB(db)
	return p
}

type extra struct {
	Dao[model.Extra]

	ALL             field.Asterisk
	ID              field.Uint
	Name            field.String
	Description     field.String
	AdditionalPrice field.Field
	ProductID       field.Uint
}

func newExtra(db *gorm.DB) extra {
	_extra := extra{Dao: newDao[model.Extra](db)}

	tableName := _extra.TableName()
	_extra.ALL = field.NewAsterisk(tableName)
	_extra.ID = field.NewUint(tableName, "id")
	_extra.Name = field.NewString(tableName, "name")
	_extra.Description = field.NewString(tableName, "description")
	_extra.AdditionalPrice = field.NewField(tableName, "additional_price")
	_extra.ProductID = field.NewUint(tableName, "product_id")
	return _extra
}

func (e extra) replaceDB(db *gorm.DB) extra {
	e.Dao = e.Dao.replaceDB(db)
	return e
}

type staff struct {
	Dao[model.Staff]

	ALL      field.Asterisk
	ID       field.Uint
	Name     field.String
	Username field.String
	Password field.String
}

func newStaff(db *gorm.DB) staff {
	_staff := staff{Dao: newDao[model.Staff](db)}

	tableName := _staff.TableName()
	_staff.ALL = field.NewAsterisk(tableName)
	_staff.ID = field.NewUint(tableName, "id")
	_staff.Name = field.NewString(tableName, "name")
	_staff.Username = field.NewString(tableName, "username")
	_staff.Password = field.NewString(tableName, "password")
	return _staff
}

func (s staff) replaceDB(db *gorm.DB) staff {
	s.Dao = s.Dao.replaceDB(db)
	return s
}

type table struct {
	Dao[model.Table]

	ALL  field.Asterisk
	ID   field.Uint
	Name field.String
}

func newTable(db *gorm.DB) table {
	_table := table{Dao: newDao[model.Table](db)}

	tableName := _table.TableName()
	_table.ALL = field.NewAsterisk(tableName)
	_table.ID = field.NewUint(tableName, "id")
	_table.Name = field.NewString(tableName, "name")
	return _table
}

func (t table) replaceDB(db *gorm.DB) table {
	t.Dao = t.Dao.replaceDB(db)
	return t
}

type order struct {
	Dao[model.Order]

	ALL       field.Asterisk
	ID        field.Uint
	TableID   field.Uint
	StaffID   field.Uint
	StartTime field.Time
	EndTime   field.Time
}

func newOrder(db *gorm.DB) order {
	_order := order{Dao: newDao[model.Order](db)}

	tableName := _order.TableName()
	_order.ALL = field.NewAsterisk(tableName)
	_order.ID = field.NewUint(tableName, "id")
	_order.TableID = field.NewUint(tableName, "table_id")
	_order.StaffID = field.NewUint(tableName, "staff_id")
	_order.StartTime = field.NewTime(tableName, "start_time")
	_order.EndTime = field.NewTime(tableName, "end_time")
	return _order
}

func (o order) replaceDB(db *gorm.DB) order {
	o.Dao = o.Dao.replaceDB(db)
	return o
}

type orderItem struct {
	Dao[model.OrderItem]

	ALL       field.Asterisk
	ProductID field.Uint
	OrderID   field.Uint
	Quantity  field.Int
	UnitPrice field.Field
}

func newOrderItem(db *gorm.DB) orderItem {
	_orderItem := orderItem{Dao: newDao[model.OrderItem](db)}

	tableName := _orderItem.TableName()
	_orderItem.ALL = field.NewAsterisk(tableName)
	_orderItem.ProductID = field.NewUint(tableName, "product_id")
	_orderItem.OrderID = field.NewUint(tableName, "order_id")
	_orderItem.Quantity = field.NewInt(tableName, "quantity")
	_orderItem.UnitPrice = field.NewField(tableName, "unit_price")
	return _orderItem
}

func (o orderItem) replaceDB(db *gorm.DB) orderItem {
	o.Dao = o.Dao.replaceDB(db)
	return o
}
