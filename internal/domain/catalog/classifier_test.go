package catalog

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassifier(t *testing.T) {
	t.Run("creates classifier with valid input", func(t *testing.T) {
		classifier, err := NewClassifier("Office Supplies")
		require.NoError(t, err)
		require.NotNil(t, classifier)

		assert.NotEqual(t, uuid.Nil, classifier.ID)
		assert.Equal(t, "Office Supplies", classifier.Name)

		events := classifier.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeClassifierCreated, events[0].EventType())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		classifier, err := NewClassifier("  Hardware  ")
		require.NoError(t, err)
		assert.Equal(t, "Hardware", classifier.Name)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		classifier, err := NewClassifier("   ")
		assert.Nil(t, classifier)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with overlong name", func(t *testing.T) {
		classifier, err := NewClassifier(strings.Repeat("x", 201))
		assert.Nil(t, classifier)
		assert.Error(t, err)
	})
}

func TestClassifier_Rename(t *testing.T) {
	classifier, err := NewClassifier("Old Name")
	require.NoError(t, err)

	t.Run("renames with valid name", func(t *testing.T) {
		err := classifier.Rename("New Name")
		require.NoError(t, err)
		assert.Equal(t, "New Name", classifier.Name)
		assert.Equal(t, 2, classifier.Version)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		err := classifier.Rename("")
		assert.Error(t, err)
		assert.Equal(t, "New Name", classifier.Name)
	})
}
