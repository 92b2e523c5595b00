package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanyStatus is the approval state of a B2B account.
type CompanyStatus string

const (
	CompanyPending   CompanyStatus = "pending"
	CompanyApproved  CompanyStatus = "approved"
	CompanyRejected  CompanyStatus = "rejected"
	CompanySuspended CompanyStatus = "suspended"
)

// Valid reports whether s is a known company status.
func (s CompanyStatus) Valid() bool {
	switch s {
	case CompanyPending, CompanyApproved, CompanyRejected, CompanySuspended:
		return true
	}
	return false
}

// CanTransitionTo enforces the company lifecycle:
// pending -> approved|rejected, approved <-> suspended, and
// rejected/suspended -> approved (reactivation).
func (s CompanyStatus) CanTransitionTo(target CompanyStatus) bool {
	switch s {
	case CompanyPending:
		return target == CompanyApproved || target == CompanyRejected
	case CompanyApproved:
		return target == CompanySuspended || target == CompanyApproved
	case CompanyRejected:
		return target == CompanyApproved
	case CompanySuspended:
		return target == CompanyApproved
	}
	return false
}

// Company is a registered wholesale partner. Self-registration creates the
// account as pending; an admin approves it with a tier, which fixes the
// discount percent and payment terms until the tier changes.
type Company struct {
	ID               string
	CompanyName      string
	EIK              string // Bulgarian company tax ID, unique
	MOL              string // legal representative
	Email            string
	Phone            string
	Address          string
	PasswordHash     string
	Status           CompanyStatus
	Tier             *Tier
	DiscountPercent  decimal.Decimal
	PaymentTermsDays int
	ApprovedAt       *time.Time
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
