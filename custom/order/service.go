package order

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/romana/rlog"

	"restaurant_system/constants"
	"restaurant_system/dal"
	"restaurant_system/model"
)

// Clock stamps start and end times.
type Clock func() time.Time

// Manager owns the order lifecycle: opening, editing, closing and reporting.
// Every method runs against a store session scoped to ctx.
//
// Each operation is a single read followed by a single write with no row
// locking, so a concurrent close and update of the same order race and the
// last write wins.
type Manager struct {
	db  *dal.Query
	now Clock
}

func NewManager(db *dal.Query, now Clock) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{db: db, now: now}
}

// ListOpenOrders returns every order without an end time.
func (m *Manager) ListOpenOrders(ctx context.Context) ([]*model.Order, error) {
	db := m.db.WithContext(ctx)
	return db.Order.Where(db.Order.EndTime.IsNull()).Find()
}

// GetOrder returns an open order. A closed order is reported as
// ErrInvalidState, not as missing.
func (m *Manager) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	order, err := m.findOrder(m.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	if err = requireOpen(order); err != nil {
		return nil, err
	}
	return order, nil
}

// CreateOrder opens a new order for the payload's table and staff member.
// The start time is the server clock; id, start and end times in the payload are ignored.
func (m *Manager) CreateOrder(ctx context.Context, payload model.Order) (*model.Order, error) {
	if payload.TableID == 0 || payload.StaffID == 0 {
		return nil, errors.Wrap(constants.ErrValidation, "tableId and staffId are required")
	}
	order := model.Order{
		TableID:   payload.TableID,
		StaffID:   payload.StaffID,
		StartTime: m.now(),
	}
	if err := m.db.WithContext(ctx).Order.Create(&order); err != nil {
		return nil, errors.Wrap(err, "create order failed")
	}
	logState(&order)
	return &order, nil
}

// UpdateOrder overwrites the stored order with payload. Omitted fields are
// written as zero values. The payload may not carry an end time: closing
// happens only through CloseOrder.
func (m *Manager) UpdateOrder(ctx context.Context, id uint, payload model.Order) error {
	if payload.ID != id {
		return errors.Wrapf(constants.ErrValidation, "%s: %d != %d", constants.ID_MISMATCH, id, payload.ID)
	}
	if payload.EndTime != nil {
		return errors.Wrap(constants.ErrValidation, constants.ORDER_END_TIME_NOT_ALLOWED)
	}
	affected, err := m.db.WithContext(ctx).Order.Replace(&payload)
	if err != nil {
		return errors.Wrapf(err, "update order %d failed", id)
	}
	if affected == 0 {
		return errors.Wrapf(constants.ErrNotFound, "%s: %d", constants.ORDER_NOT_FOUND, id)
	}
	return nil
}

// CloseOrder stamps the end time of an open order and returns it.
// Closing an already closed order fails; it is not a no-op.
func (m *Manager) CloseOrder(ctx context.Context, id uint) (*model.Order, error) {
	db := m.db.WithContext(ctx)
	order, err := m.findOrder(db, id)
	if err != nil {
		return nil, err
	}
	if err = requireOpen(order); err != nil {
		return nil, err
	}

	now := m.now()
	if _, err = db.Order.Where(db.Order.ID.Eq(id)).Update(db.Order.EndTime, now); err != nil {
		return nil, errors.Wrapf(err, "close order %d failed", id)
	}
	order.EndTime = &now
	logState(order)
	return order, nil
}

// ReportByPeriod returns the orders closed within [start, end], both bounds included.
func (m *Manager) ReportByPeriod(ctx context.Context, start, end time.Time) ([]*model.Order, error) {
	rlog.Debugf("Report by period %s .. %s", start.Format(time.RFC3339), end.Format(time.RFC3339))
	read := m.db.WithContext(ctx).ReadDB()
	return read.Order.
		Where(read.Order.EndTime.IsNotNull(), read.Order.EndTime.Gte(start), read.Order.EndTime.Lte(end)).
		Find()
}

// ReportByDay returns the orders closed on day's calendar date in server local time.
func (m *Manager) ReportByDay(ctx context.Context, day time.Time) ([]*model.Order, error) {
	from, to := dayBounds(day)
	rlog.Debugf("Report by day %s", from.Format("2006-01-02"))
	read := m.db.WithContext(ctx).ReadDB()
	return read.Order.
		Where(read.Order.EndTime.IsNotNull(), read.Order.EndTime.Gte(from), read.Order.EndTime.Lt(to)).
		Find()
}

// dayBounds returns local midnight of day and the following midnight.
func dayBounds(day time.Time) (time.Time, time.Time) {
	day = day.In(time.Local)
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return from, from.AddDate(0, 0, 1)
}

func (m *Manager) findOrder(db *dal.Query, id uint) (*model.Order, error) {
	order, err := db.Order.Get(id)
	if errors.Is(err, constants.ErrNotFound) {
		return nil, errors.Wrapf(err, "%s: %d", constants.ORDER_NOT_FOUND, id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "query order %d failed", id)
	}
	return order, nil
}
