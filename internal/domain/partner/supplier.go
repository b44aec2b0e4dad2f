package partner

import (
	"strings"
	"time"

	"github.com/procure/backend/internal/domain/shared"
)

// Supplier represents a vendor that can be invited to quote and receive
// purchase orders.
type Supplier struct {
	shared.BaseAggregateRoot
	Name    string `gorm:"type:varchar(200);not null;index"`
	Contact string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(name, contact string) (*Supplier, error) {
	if err := validateSupplierName(name); err != nil {
		return nil, err
	}
	if len(contact) > 200 {
		return nil, shared.NewDomainError("INVALID_CONTACT", "Contact cannot exceed 200 characters")
	}

	supplier := &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Contact:           strings.TrimSpace(contact),
	}

	supplier.AddDomainEvent(NewSupplierCreatedEvent(supplier))

	return supplier, nil
}

// Update updates the supplier's basic information
func (s *Supplier) Update(name, contact string) error {
	if err := validateSupplierName(name); err != nil {
		return err
	}
	if len(contact) > 200 {
		return shared.NewDomainError("INVALID_CONTACT", "Contact cannot exceed 200 characters")
	}

	s.Name = strings.TrimSpace(name)
	s.Contact = strings.TrimSpace(contact)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

func validateSupplierName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
