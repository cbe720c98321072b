package model

// OrderStatus describes fulfillment lifecycle of a print order.
type OrderStatus string

const (
	OrderStatusNew           OrderStatus = "new"
	OrderStatusPending       OrderStatus = "pending"
	OrderStatusPaid          OrderStatus = "paid"
	OrderStatusPaymentFailed OrderStatus = "payment_failed"
	OrderStatusApproved      OrderStatus = "approved"
	OrderStatusProcessing    OrderStatus = "processing"
	OrderStatusQualityCheck  OrderStatus = "quality_check"
	OrderStatusPackaging     OrderStatus = "packaging"
	OrderStatusShipped       OrderStatus = "shipped"
	OrderStatusDelivered     OrderStatus = "delivered"
	OrderStatusCancelled     OrderStatus = "cancelled"
)

// statusFlow is the canonical happy-path order of statuses.
var statusFlow = []OrderStatus{
	OrderStatusNew,
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusApproved,
	OrderStatusProcessing,
	OrderStatusQualityCheck,
	OrderStatusPackaging,
	OrderStatusShipped,
	OrderStatusDelivered,
}

var statusLabels = map[OrderStatus]string{
	OrderStatusNew:           "New",
	OrderStatusPending:       "Pending Payment",
	OrderStatusPaid:          "Payment Received",
	OrderStatusPaymentFailed: "Payment Failed",
	OrderStatusApproved:      "Approved",
	OrderStatusProcessing:    "Processing",
	OrderStatusQualityCheck:  "Quality Check",
	OrderStatusPackaging:     "Packaging",
	OrderStatusShipped:       "Shipped",
	OrderStatusDelivered:     "Delivered",
	OrderStatusCancelled:     "Cancelled",
}

// Valid reports whether the status is one of the defined values.
func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human readable status name.
func (s OrderStatus) Label() string {
	return statusLabels[s]
}

// Terminal reports whether no further transitions are possible.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCancelled, OrderStatusPaymentFailed:
		return true
	}
	return false
}

func flowIndex(s OrderStatus) int {
	for i, v := range statusFlow {
		if v == s {
			return i
		}
	}
	return -1
}

// NextStatuses returns every status an order may legally move to from the
// current one: the current status itself (a no-op update), every status
// strictly later in the canonical flow, and cancellation. Skipping ahead is
// allowed on purpose so operators can fast-forward an order. Terminal
// statuses return an empty set.
func NextStatuses(current OrderStatus) []OrderStatus {
	idx := flowIndex(current)
	if idx == -1 || current.Terminal() {
		return []OrderStatus{}
	}

	next := make([]OrderStatus, 0, len(statusFlow)-idx+1)
	next = append(next, current)
	next = append(next, statusFlow[idx+1:]...)
	next = append(next, OrderStatusCancelled)
	return next
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to OrderStatus) bool {
	for _, s := range NextStatuses(from) {
		if s == to {
			return true
		}
	}
	return false
}
