package services

import (
	"time"

	"github.com/bluecotton/board/models"
	"github.com/bluecotton/board/repository"
)

// Like toggles, reports, and recent-view tracking. Each toggle runs its
// check-then-act inside one transaction; the unique index on the like table
// catches the remaining insert race, in which case the whole request fails
// rather than double-counting.

// ToggleLike flips the member's like on a post.
func (s *PostService) ToggleLike(postID, memberID uint) error {
	return s.repo.Transaction(func(tx *repository.PostRepository) error {
		exists, err := tx.ExistsLike(postID, memberID)
		if err != nil {
			return err
		}
		if exists {
			return tx.DeleteLike(postID, memberID)
		}
		return tx.InsertLike(postID, memberID)
	})
}

// ToggleCommentLike flips the member's like on a comment.
func (s *PostService) ToggleCommentLike(commentID, memberID uint) error {
	return s.repo.Transaction(func(tx *repository.PostRepository) error {
		exists, err := tx.ExistsCommentLike(commentID, memberID)
		if err != nil {
			return err
		}
		if exists {
			return tx.DeleteCommentLike(commentID, memberID)
		}
		return tx.InsertCommentLike(commentID, memberID)
	})
}

// ToggleReplyLike flips the member's like on a reply.
func (s *PostService) ToggleReplyLike(replyID, memberID uint) error {
	return s.repo.Transaction(func(tx *repository.PostRepository) error {
		exists, err := tx.ExistsReplyLike(replyID, memberID)
		if err != nil {
			return err
		}
		if exists {
			return tx.DeleteReplyLike(replyID, memberID)
		}
		return tx.InsertReplyLike(replyID, memberID)
	})
}

// ReportPost records a post report. No deduplication.
func (s *PostService) ReportPost(report *models.PostReport) error {
	return s.repo.InsertPostReport(report)
}

// ReportComment records a comment report.
func (s *PostService) ReportComment(report *models.CommentReport) error {
	return s.repo.InsertCommentReport(report)
}

// ReportReply records a reply report.
func (s *PostService) ReportReply(report *models.ReplyReport) error {
	return s.repo.InsertReplyReport(report)
}

// RegisterRecent records that the member viewed the post just now, refreshing
// the row when one already exists.
func (s *PostService) RegisterRecent(memberID, postID uint) error {
	return s.repo.UpsertRecentView(memberID, postID, time.Now())
}
