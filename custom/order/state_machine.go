package order

import (
	"github.com/pkg/errors"
	"github.com/romana/rlog"

	"restaurant_system/constants"
	"restaurant_system/model"
)

// Order States. OPEN -> CLOSED is the only transition; CLOSED is terminal.
const ORDER_STATE_OPEN = int8(0)
const ORDER_STATE_CLOSED = int8(1)

func stateOf(order *model.Order) int8 {
	if order.IsOpen() {
		return ORDER_STATE_OPEN
	}
	return ORDER_STATE_CLOSED
}

func stateCodeToString(state int8) string {
	switch state {
	case ORDER_STATE_OPEN:
		return "OPEN"
	case ORDER_STATE_CLOSED:
		return "CLOSED"
	}
	return "UNKNOWN"
}

// requireOpen fails with ErrInvalidState unless the order is still open.
func requireOpen(order *model.Order) error {
	if stateOf(order) != ORDER_STATE_OPEN {
		return errors.Wrapf(constants.ErrInvalidState, "%s: order %d", constants.ORDER_CLOSED, order.ID)
	}
	return nil
}

func logState(order *model.Order) {
	state := stateOf(order)
	rlog.Infof("Order %d state is %d(%s)", order.ID, state, stateCodeToString(state))
}
