package domain

import "time"

type ContactStatus string

const (
	ContactPending   ContactStatus = "PENDING"
	ContactAccepted  ContactStatus = "ACCEPTED"
	ContactRejected  ContactStatus = "REJECTED"
	ContactCompleted ContactStatus = "COMPLETED"
	ContactCancelled ContactStatus = "CANCELLED"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactPending, ContactAccepted, ContactRejected, ContactCompleted, ContactCancelled:
		return true
	}
	return false
}

// ContactRecord is a tenant's viewing request for a house, handled by the
// landlord. It also anchors the chat between the two before any order
// exists.
type ContactRecord struct {
	ID                 int64         `json:"id"`
	HouseID            int64         `json:"house_id"`
	TenantID           int64         `json:"tenant_id"`
	LandlordID         int64         `json:"landlord_id"`
	Message            string        `json:"message,omitempty"`
	PreferredVisitTime *time.Time    `json:"preferred_visit_time,omitempty"`
	Status             ContactStatus `json:"status"`
	Remarks            string        `json:"remarks,omitempty"`
	HandledAt          *time.Time    `json:"handled_at,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}
