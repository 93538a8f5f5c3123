package order

import (
	"context"

	"github.com/pkg/errors"
	"github.com/romana/rlog"
	"github.com/shopspring/decimal"

	"restaurant_system/constants"
	"restaurant_system/dal"
	"restaurant_system/model"
)

type AddItemRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type OrderTotal struct {
	OrderID uint            `json:"orderId"`
	Total   decimal.Decimal `json:"total"`
}

// ListItems returns the lines of an order, open or closed.
func (m *Manager) ListItems(ctx context.Context, orderID uint) ([]*model.OrderItem, error) {
	db := m.db.WithContext(ctx)
	if _, err := m.findOrder(db, orderID); err != nil {
		return nil, err
	}
	return db.OrderItem.Where(db.OrderItem.OrderID.Eq(orderID)).Find()
}

// AddItem puts a product on an open order. A product already on the order has
// its quantity raised and keeps the unit price captured when it was first
// added; a new line captures the product's current price.
func (m *Manager) AddItem(ctx context.Context, orderID uint, req AddItemRequest) (*model.OrderItem, error) {
	if req.ProductID == 0 {
		return nil, errors.Wrap(constants.ErrValidation, "productId is required")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		return nil, errors.Wrap(constants.ErrValidation, "quantity must be positive")
	}

	var item *model.OrderItem
	err := m.db.WithContext(ctx).Transaction(func(tx *dal.Query) error {
		order, errTx := m.findOrder(tx, orderID)
		if errTx != nil {
			return errTx
		}
		if errTx = requireOpen(order); errTx != nil {
			return errTx
		}
		product, errTx := tx.Product.Get(req.ProductID)
		if errors.Is(errTx, constants.ErrNotFound) {
			return errors.Wrapf(errTx, "%s: %d", constants.PRODUCT_NOT_FOUND, req.ProductID)
		}
		if errTx != nil {
			return errTx
		}

		line := tx.OrderItem.Where(tx.OrderItem.OrderID.Eq(orderID), tx.OrderItem.ProductID.Eq(req.ProductID))
		existing, errTx := line.Take()
		switch {
		case errTx == nil:
			_, errTx = tx.OrderItem.Where(tx.OrderItem.OrderID.Eq(orderID), tx.OrderItem.ProductID.Eq(req.ProductID)).
				Update(tx.OrderItem.Quantity, tx.OrderItem.Quantity.Add(req.Quantity))
			if errTx != nil {
				return errTx
			}
			existing.Quantity += req.Quantity
			item = existing
		case errors.Is(errTx, constants.ErrNotFound):
			item = &model.OrderItem{
				ProductID: product.ID,
				OrderID:   order.ID,
				Quantity:  req.Quantity,
				UnitPrice: product.Price,
			}
			if errTx = tx.OrderItem.Create(item); errTx != nil {
				return errTx
			}
		default:
			return errTx
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rlog.Infof("Order %d now has %d x product %d at %s", orderID, item.Quantity, item.ProductID, item.UnitPrice.StringFixed(2))
	return item, nil
}

// RemoveItem deletes a product's line from an open order.
func (m *Manager) RemoveItem(ctx context.Context, orderID, productID uint) error {
	db := m.db.WithContext(ctx)
	order, err := m.findOrder(db, orderID)
	if err != nil {
		return err
	}
	if err = requireOpen(order); err != nil {
		return err
	}
	affected, err := db.OrderItem.Delete(&model.OrderItem{OrderID: orderID, ProductID: productID})
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.Wrapf(constants.ErrNotFound, "%s: product %d", constants.ORDER_ITEM_NOT_FOUND, productID)
	}
	return nil
}

// Total sums quantity x unit price over the order's lines.
func (m *Manager) Total(ctx context.Context, orderID uint) (*OrderTotal, error) {
	items, err := m.ListItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return &OrderTotal{OrderID: orderID, Total: total}, nil
}
