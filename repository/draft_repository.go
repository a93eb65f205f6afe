package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/bluecotton/board/models"
)

// Draft access. Lookups are always scoped to the owning member so a foreign
// draft id behaves exactly like a missing one.

// InsertDraft persists a draft and fills in its generated id.
func (r *PostRepository) InsertDraft(draft *models.Draft) error {
	return r.db.Create(draft).Error
}

// FindDraftByID returns the member's draft, or nil when it does not exist or
// belongs to someone else.
func (r *PostRepository) FindDraftByID(draftID, memberID uint) (*models.Draft, error) {
	var draft models.Draft
	err := r.db.Where("id = ? AND member_id = ?", draftID, memberID).Take(&draft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// DeleteDraftByID removes the member's draft if it exists.
func (r *PostRepository) DeleteDraftByID(draftID, memberID uint) error {
	return r.db.Where("id = ? AND member_id = ?", draftID, memberID).
		Delete(&models.Draft{}).Error
}
