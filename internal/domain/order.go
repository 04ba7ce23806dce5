package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusActive     OrderStatus = "ACTIVE"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusTerminated OrderStatus = "TERMINATED"
)

// BlockingStatuses are the order statuses that reserve a house's calendar.
// A PENDING order does not block overlapping bookings for availability
// queries.
var BlockingStatuses = []OrderStatus{OrderStatusConfirmed, OrderStatusActive}

// CreationBlockingStatuses is the stricter set applied when inserting a
// new order: an open PENDING request on the same range also rejects the
// create, so two simultaneous requests cannot both land.
var CreationBlockingStatuses = []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusActive}

type TerminationStatus string

const (
	TerminationNone      TerminationStatus = "NONE"
	TerminationRequested TerminationStatus = "REQUESTED"
	TerminationApproved  TerminationStatus = "APPROVED"
	TerminationRejected  TerminationStatus = "REJECTED"
)

// RentalOrder is a tenant's reservation of a house for an inclusive date
// range. LandlordID, rent and deposit are snapshotted from the house at
// creation time; the order, not the house, is the source of truth for who
// must approve it afterwards.
type RentalOrder struct {
	ID         int64 `json:"id"`
	HouseID    int64 `json:"house_id"`
	TenantID   int64 `json:"tenant_id"`
	LandlordID int64 `json:"landlord_id"`

	StartDate string `json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate   string `json:"end_date"`   // YYYY-MM-DD, inclusive

	MonthlyRentCents int64 `json:"monthly_rent_cents"`
	DepositCents     int64 `json:"deposit_cents"`
	TotalRentCents   int64 `json:"total_rent_cents"`

	Status      OrderStatus `json:"status"`
	ContractURL string      `json:"contract_url,omitempty"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`

	// Termination negotiation, orthogonal to Status except that approval
	// forces Status to TERMINATED.
	TerminationStatus      TerminationStatus `json:"termination_status"`
	TerminationRequesterID *int64            `json:"termination_requester_id,omitempty"`
	TerminationResolverID  *int64            `json:"termination_resolver_id,omitempty"`
	TerminationReason      string            `json:"termination_reason,omitempty"`
	TerminationFeedback    string            `json:"termination_feedback,omitempty"`
	TerminationRequestedAt *time.Time        `json:"termination_requested_at,omitempty"`
	TerminationResolvedAt  *time.Time        `json:"termination_resolved_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Closed returns true once the order can no longer progress or be
// terminated.
func (o *RentalOrder) Closed() bool {
	return o.Status == OrderStatusCancelled || o.Status == OrderStatusTerminated
}
