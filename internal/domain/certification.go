package domain

import "time"

type CertificationStatus string

const (
	CertificationPending  CertificationStatus = "PENDING"
	CertificationApproved CertificationStatus = "APPROVED"
	CertificationRejected CertificationStatus = "REJECTED"
)

func (s CertificationStatus) Valid() bool {
	switch s {
	case CertificationPending, CertificationApproved, CertificationRejected:
		return true
	}
	return false
}

// LandlordCertification is a tenant's application to become a landlord.
// Approval promotes the user's role.
type LandlordCertification struct {
	ID           int64               `json:"id"`
	UserID       int64               `json:"user_id"`
	DocumentURLs []string            `json:"document_urls"`
	Reason       string              `json:"reason,omitempty"`
	Status       CertificationStatus `json:"status"`
	ReviewedBy   *int64              `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time          `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
