package identity

import (
	"strings"
	"time"

	"github.com/procure/backend/internal/domain/shared"
)

// Department is an organizational unit that raises requisitions and owns
// budgets.
type Department struct {
	shared.BaseAggregateRoot
	Name string `gorm:"type:varchar(200);not null;uniqueIndex:idx_departments_name"`
}

// TableName returns the table name for GORM
func (Department) TableName() string {
	return "departments"
}

// NewDepartment creates a new department
func NewDepartment(name string) (*Department, error) {
	if err := validateIdentityName(name); err != nil {
		return nil, err
	}

	department := &Department{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
	}

	department.AddDomainEvent(NewDepartmentCreatedEvent(department))

	return department, nil
}

// Rename changes the department's name
func (d *Department) Rename(name string) error {
	if err := validateIdentityName(name); err != nil {
		return err
	}

	d.Name = strings.TrimSpace(name)
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	return nil
}

func validateIdentityName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
