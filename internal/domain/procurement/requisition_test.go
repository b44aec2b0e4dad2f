package procurement

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLines() []RequisitionLine {
	return []RequisitionLine{
		{ArticleID: uuid.New(), Quantity: 10},
		{ArticleID: uuid.New(), Quantity: 3},
	}
}

func TestNewRequisition(t *testing.T) {
	departmentID := uuid.New()
	classifierID := uuid.New()

	t.Run("creates requisition in draft", func(t *testing.T) {
		requisition, err := NewRequisition(departmentID, classifierID, "office restock", validLines())
		require.NoError(t, err)
		require.NotNil(t, requisition)

		assert.Equal(t, RequisitionStatusDraft, requisition.Status)
		assert.Equal(t, departmentID, requisition.DepartmentID)
		assert.Equal(t, classifierID, requisition.ClassifierID)
		assert.Len(t, requisition.Items, 2)
		for _, item := range requisition.Items {
			assert.Equal(t, requisition.ID, item.RequisitionID)
		}

		events := requisition.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeRequisitionCreated, events[0].EventType())
	})

	t.Run("fails without items", func(t *testing.T) {
		requisition, err := NewRequisition(departmentID, classifierID, "", nil)
		assert.Nil(t, requisition)
		assert.Error(t, err)
	})

	t.Run("fails with non-positive quantity", func(t *testing.T) {
		lines := []RequisitionLine{{ArticleID: uuid.New(), Quantity: 0}}
		_, err := NewRequisition(departmentID, classifierID, "", lines)
		assert.Error(t, err)
	})

	t.Run("fails with repeated article", func(t *testing.T) {
		articleID := uuid.New()
		lines := []RequisitionLine{
			{ArticleID: articleID, Quantity: 1},
			{ArticleID: articleID, Quantity: 2},
		}
		_, err := NewRequisition(departmentID, classifierID, "", lines)
		assert.Error(t, err)
	})

	t.Run("fails with nil references", func(t *testing.T) {
		_, err := NewRequisition(uuid.Nil, classifierID, "", validLines())
		assert.Error(t, err)
		_, err = NewRequisition(departmentID, uuid.Nil, "", validLines())
		assert.Error(t, err)
	})
}

func TestRequisition_Workflow(t *testing.T) {
	newDraft := func(t *testing.T) *Requisition {
		requisition, err := NewRequisition(uuid.New(), uuid.New(), "", validLines())
		require.NoError(t, err)
		return requisition
	}

	t.Run("draft to in review to approved", func(t *testing.T) {
		requisition := newDraft(t)
		require.NoError(t, requisition.SendToReview())
		assert.Equal(t, RequisitionStatusInReview, requisition.Status)
		require.NoError(t, requisition.Approve())
		assert.True(t, requisition.IsApproved())
	})

	t.Run("draft to in review to rejected", func(t *testing.T) {
		requisition := newDraft(t)
		require.NoError(t, requisition.SendToReview())
		require.NoError(t, requisition.Reject())
		assert.Equal(t, RequisitionStatusRejected, requisition.Status)
	})

	t.Run("cannot approve from draft", func(t *testing.T) {
		requisition := newDraft(t)
		assert.Error(t, requisition.Approve())
		assert.Equal(t, RequisitionStatusDraft, requisition.Status)
	})

	t.Run("cannot leave terminal states", func(t *testing.T) {
		requisition := newDraft(t)
		require.NoError(t, requisition.SendToReview())
		require.NoError(t, requisition.Approve())

		assert.Error(t, requisition.SendToReview())
		assert.Error(t, requisition.Reject())
	})

	t.Run("transitions emit events", func(t *testing.T) {
		requisition := newDraft(t)
		requisition.ClearDomainEvents()

		require.NoError(t, requisition.SendToReview())
		events := requisition.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeRequisitionStatusChanged, events[0].EventType())
	})
}

func TestRequisition_QuantityByArticle(t *testing.T) {
	lines := validLines()
	requisition, err := NewRequisition(uuid.New(), uuid.New(), "", lines)
	require.NoError(t, err)

	quantities := requisition.QuantityByArticle()
	require.Len(t, quantities, 2)
	assert.Equal(t, lines[0].Quantity, quantities[lines[0].ArticleID])
	assert.Equal(t, lines[1].Quantity, quantities[lines[1].ArticleID])
}
