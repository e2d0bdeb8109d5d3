package domain

import "fmt"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAccepted  OrderStatus = "accepted"
	StatusCooking   OrderStatus = "cooking"
	StatusDelayed   OrderStatus = "delayed"
	StatusReady     OrderStatus = "ready"
	StatusRejected  OrderStatus = "rejected"
	StatusCancelled OrderStatus = "cancelled"
)

// Allowed owner-driven transitions. delayed is only reachable from cooking;
// ready, rejected and cancelled are terminal.
var transitions = map[OrderStatus]map[OrderStatus]bool{
	StatusPending:   {StatusAccepted: true, StatusRejected: true},
	StatusAccepted:  {StatusCooking: true, StatusCancelled: true},
	StatusCooking:   {StatusReady: true, StatusDelayed: true},
	StatusDelayed:   {StatusReady: true, StatusCancelled: true},
	StatusReady:     {},
	StatusRejected:  {},
	StatusCancelled: {},
}

func CanTransition(from, to OrderStatus) bool {
	next := transitions[from]
	return next != nil && next[to]
}

func IsTerminal(status OrderStatus) bool {
	return len(transitions[status]) == 0
}

// ActiveStatuses is the owner queue's "in progress" set; everything else is done.
var ActiveStatuses = []OrderStatus{StatusPending, StatusAccepted, StatusCooking, StatusDelayed}

func IsActive(status OrderStatus) bool {
	for _, s := range ActiveStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := transitions[status]; !ok {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return status, nil
}
