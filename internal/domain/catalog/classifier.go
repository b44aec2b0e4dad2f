package catalog

import (
	"strings"
	"time"

	"github.com/procure/backend/internal/domain/shared"
)

// Classifier groups articles into a procurement category. Requisitions are
// always raised against a single classifier, and every article on a
// requisition must belong to it.
type Classifier struct {
	shared.BaseAggregateRoot
	Name string `gorm:"type:varchar(200);not null;uniqueIndex:idx_classifiers_name"`
}

// TableName returns the table name for GORM
func (Classifier) TableName() string {
	return "classifiers"
}

// NewClassifier creates a new classifier
func NewClassifier(name string) (*Classifier, error) {
	if err := validateCatalogName(name); err != nil {
		return nil, err
	}

	classifier := &Classifier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
	}

	classifier.AddDomainEvent(NewClassifierCreatedEvent(classifier))

	return classifier, nil
}

// Rename changes the classifier's name
func (c *Classifier) Rename(name string) error {
	if err := validateCatalogName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

func validateCatalogName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}
