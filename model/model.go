package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllTables is the migration order: referenced tables before the tables pointing at them.
var AllTables []interface{} = []interface{}{
	Category{}, Product{}, Extra{}, Staff{}, Table{}, Order{}, OrderItem{},
}

// Record is implemented by every catalog entity served by the generic resource handlers.
type Record interface {
	// PrimaryKey returns the store assigned identifier, zero before insertion.
	PrimaryKey() uint
	Validate() error
}

type Category struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"size:100;not null"`
	Products []Product `json:"-" gorm:"foreignKey:CategoryID"`
}

type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:100;not null"`
	Description *string         `json:"description,omitempty" gorm:"size:255"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Photo       *string         `json:"photo,omitempty" gorm:"size:255"`
	CategoryID  uint            `json:"categoryId" gorm:"index;not null"`
	Extras      []Extra         `json:"-" gorm:"foreignKey:ProductID"`
	OrderItems  []OrderItem     `json:"-" gorm:"foreignKey:ProductID"`
}

type Extra struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Name            string          `json:"name" gorm:"size:100;not null"`
	Description     *string         `json:"description,omitempty" gorm:"size:255"`
	AdditionalPrice decimal.Decimal `json:"additionalPrice" gorm:"type:decimal(10,2);not null"`
	ProductID       uint            `json:"productId" gorm:"index;not null"`
}

// Staff passwords are stored exactly as received.
type Staff struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"size:100;not null"`
	Username string  `json:"username" gorm:"size:50;not null"`
	Password string  `json:"password" gorm:"size:60;not null"`
	Orders   []Order `json:"-" gorm:"foreignKey:StaffID"`
}

func (Staff) TableName() string {
	return "staff"
}

// Table is a dining table.
type Table struct {
	ID     uint    `json:"id" gorm:"primaryKey"`
	Name   string  `json:"name" gorm:"size:50;not null"`
	Orders []Order `json:"-" gorm:"foreignKey:TableID"`
}

// Order is open while EndTime is nil.
type Order struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	TableID    uint        `json:"tableId" gorm:"index"`
	StaffID    uint        `json:"staffId" gorm:"index"`
	StartTime  time.Time   `json:"startTime" gorm:"not null"`
	EndTime    *time.Time  `json:"endTime" gorm:"index"`
	OrderItems []OrderItem `json:"-" gorm:"foreignKey:OrderID"`
}

// OrderItem is keyed by (ProductID, OrderID): a product appears at most once per order.
// UnitPrice is the product price captured when the line was first added.
type OrderItem struct {
	ProductID uint            `json:"productId" gorm:"primaryKey;autoIncrement:false"`
	OrderID   uint            `json:"orderId" gorm:"primaryKey;autoIncrement:false;index"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	UnitPrice decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2);not null"`
}

func (o Order) IsOpen() bool {
	return o.EndTime == nil
}

// Subtotal is Quantity x UnitPrice.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
