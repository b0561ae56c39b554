package models

// OrderStatus is the wire value stored in the orders table. The data layer
// accepts only the six enumerated values; transitions are client-driven and
// any valid status may overwrite any other.
type OrderStatus int

const (
	OrderPending    OrderStatus = 1
	OrderApproved   OrderStatus = 2
	OrderProcessing OrderStatus = 3
	OrderDelivered  OrderStatus = 4
	OrderCancelled  OrderStatus = 5
	OrderReturned   OrderStatus = 6
)

func (s OrderStatus) Valid() bool {
	return s >= OrderPending && s <= OrderReturned
}

func (s OrderStatus) String() string {
	switch s {
	case OrderPending:
		return "pending"
	case OrderApproved:
		return "approved"
	case OrderProcessing:
		return "processing"
	case OrderDelivered:
		return "delivered"
	case OrderCancelled:
		return "cancelled"
	case OrderReturned:
		return "returned"
	default:
		return "unknown"
	}
}
