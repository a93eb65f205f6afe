package services

import (
	"github.com/bluecotton/board/models"
	"github.com/bluecotton/board/repository"
)

// InsertComment attaches a comment to an existing post.
func (s *PostService) InsertComment(comment *models.Comment) error {
	exists, err := s.repo.ExistsPost(comment.PostID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrPostNotFound
	}
	return s.repo.InsertComment(comment)
}

// InsertReply attaches a reply to an existing comment.
func (s *PostService) InsertReply(reply *models.Reply) error {
	exists, err := s.repo.ExistsComment(reply.CommentID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCommentNotFound
	}
	return s.repo.InsertReply(reply)
}

// DeleteComment removes a comment and every reply under it. The replies go
// first inside one transaction so the tree never ends up half-deleted.
func (s *PostService) DeleteComment(commentID uint) error {
	return s.repo.Transaction(func(tx *repository.PostRepository) error {
		if err := tx.DeleteRepliesByCommentID(commentID); err != nil {
			return err
		}
		return tx.DeleteCommentByID(commentID)
	})
}

// DeleteReply removes a single reply.
func (s *PostService) DeleteReply(replyID uint) error {
	return s.repo.DeleteReplyByID(replyID)
}
