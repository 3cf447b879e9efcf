package domain

// List of possible order statuses
const (
	OrderPlaced     OrderStatus = "order_placed"
	OrderAccepted   OrderStatus = "accepted"
	OrderAssigned   OrderStatus = "assigned"
	OrderInProgress OrderStatus = "in_progress"
	OrderOnTheWay   OrderStatus = "on_the_way"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// List of possible assignment statuses
const (
	AssignmentPending  AssignmentStatus = "pending"
	AssignmentAssigned AssignmentStatus = "assigned"
	AssignmentAccepted AssignmentStatus = "accepted"
	AssignmentRejected AssignmentStatus = "rejected"
	AssignmentExpired  AssignmentStatus = "expired"
)

var allowedOrderStatuses = [...]OrderStatus{
	OrderPlaced, OrderAccepted, OrderAssigned, OrderInProgress,
	OrderOnTheWay, OrderDelivered, OrderCancelled,
}

var allowedAssignmentStatuses = [...]AssignmentStatus{
	AssignmentPending, AssignmentAssigned, AssignmentAccepted,
	AssignmentRejected, AssignmentExpired,
}

// Valid checks if the OrderStatus is valid
func (s OrderStatus) Valid() bool {
	for _, v := range allowedOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the AssignmentStatus is valid
func (s AssignmentStatus) Valid() bool {
	for _, v := range allowedAssignmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Accepting reports whether the order can still be claimed by an agent.
// Once an order is assigned (or past assignment) further accepts must fail.
func (s OrderStatus) Accepting() bool {
	switch s {
	case OrderPlaced, OrderAccepted:
		return true
	default:
		return false
	}
}

// Terminal reports whether the assignment status admits no further transitions.
func (s AssignmentStatus) Terminal() bool {
	switch s {
	case AssignmentAccepted, AssignmentRejected, AssignmentExpired:
		return true
	default:
		return false
	}
}

// assignment status transitions are monotonic: pending -> assigned -> accepted,
// with rejected/expired allowed from any non-terminal state.
var assignmentTransitions = map[AssignmentStatus][]AssignmentStatus{
	AssignmentPending:  {AssignmentAssigned, AssignmentAccepted, AssignmentRejected, AssignmentExpired},
	AssignmentAssigned: {AssignmentAccepted, AssignmentRejected, AssignmentExpired},
}

// CanTransition reports whether moving from s to next is allowed.
func (s AssignmentStatus) CanTransition(next AssignmentStatus) bool {
	for _, v := range assignmentTransitions[s] {
		if v == next {
			return true
		}
	}
	return false
}
