package services

import "github.com/bluecotton/board/models"

// RegisterDraft saves a draft for its owning member.
func (s *PostService) RegisterDraft(draft *models.Draft) error {
	return s.repo.InsertDraft(draft)
}

// GetDraft returns the member's draft. A draft owned by someone else reads
// as not found.
func (s *PostService) GetDraft(draftID, memberID uint) (*models.Draft, error) {
	draft, err := s.repo.FindDraftByID(draftID, memberID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}
	return draft, nil
}

// DeleteDraft removes the member's draft.
func (s *PostService) DeleteDraft(draftID, memberID uint) error {
	return s.repo.DeleteDraftByID(draftID, memberID)
}
