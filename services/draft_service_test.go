package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluecotton/board/models"
)

func TestDraftRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	draft := &models.Draft{MemberID: 1, SomCategoryID: 2, Title: "wip", Content: "half-written"}
	require.NoError(t, svc.RegisterDraft(draft))
	require.NotZero(t, draft.ID)

	loaded, err := svc.GetDraft(draft.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, loaded.ID)
	assert.Equal(t, "wip", loaded.Title)
	assert.Equal(t, "half-written", loaded.Content)
	assert.EqualValues(t, 2, loaded.SomCategoryID)

	require.NoError(t, svc.DeleteDraft(draft.ID, 1))

	_, err = svc.GetDraft(draft.ID, 1)
	require.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDraftMissing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetDraft(42, 1)
	require.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDraftScopedToOwner(t *testing.T) {
	svc, db := newTestService(t)

	draft := &models.Draft{MemberID: 1, Title: "mine", Content: "secret"}
	require.NoError(t, svc.RegisterDraft(draft))

	// Another member's id behaves exactly like a missing draft.
	_, err := svc.GetDraft(draft.ID, 2)
	require.ErrorIs(t, err, ErrDraftNotFound)

	require.NoError(t, svc.DeleteDraft(draft.ID, 2))
	var count int64
	require.NoError(t, db.Model(&models.Draft{}).Where("id = ?", draft.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "a foreign delete must not remove the draft")
}
