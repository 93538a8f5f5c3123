package constants

import "errors"

// Resource path segments under /api
const RESOURCE_CATEGORIES = "categorias"
const RESOURCE_PRODUCTS = "produtos"
const RESOURCE_EXTRAS = "extras"
const RESOURCE_STAFF = "funcionarios"
const RESOURCE_TABLES = "mesas"
const RESOURCE_ORDERS = "pedidos"

// Error responses
const RECORD_NOT_FOUND = "record not found"
const VALIDATION_FAILED = "validation failed"
const INVALID_STATE = "invalid state transition"
const ID_MISMATCH = "path id does not match payload id"
const ID_ASSIGNED_BY_STORE = "id is assigned by the store"
const ORDER_NOT_FOUND = "order not found"
const ORDER_CLOSED = "order is closed"
const ORDER_END_TIME_NOT_ALLOWED = "endTime can only be set by closing the order"
const PRODUCT_NOT_FOUND = "product not found"
const ORDER_ITEM_NOT_FOUND = "order item not found"

// Error kinds, matched with errors.Is at the HTTP boundary.
var (
	ErrNotFound     = errors.New(RECORD_NOT_FOUND)
	ErrValidation   = errors.New(VALIDATION_FAILED)
	ErrInvalidState = errors.New(INVALID_STATE)
)
