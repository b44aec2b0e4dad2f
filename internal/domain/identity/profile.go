package identity

import (
	"strings"
	"time"

	"github.com/procure/backend/internal/domain/shared"
)

// Profile is a named permission profile. Permissions grant a profile access
// to a specific (department, classifier) pair, and users acquire profiles
// through role assignments.
type Profile struct {
	shared.BaseAggregateRoot
	Name        string `gorm:"type:varchar(200);not null;uniqueIndex:idx_profiles_name"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}

// NewProfile creates a new profile
func NewProfile(name, description string) (*Profile, error) {
	if err := validateIdentityName(name); err != nil {
		return nil, err
	}

	profile := &Profile{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Description:       strings.TrimSpace(description),
	}

	profile.AddDomainEvent(NewProfileCreatedEvent(profile))

	return profile, nil
}

// Update updates the profile's name and description
func (p *Profile) Update(name, description string) error {
	if err := validateIdentityName(name); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Description = strings.TrimSpace(description)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}
