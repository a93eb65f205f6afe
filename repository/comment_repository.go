package repository

import (
	"github.com/bluecotton/board/models"
)

// Comment and reply access. Replies nest under comments only, so every
// query here is keyed by a single parent id (or a batch of them for the
// detail view).

// InsertComment persists a comment and fills in its generated id.
func (r *PostRepository) InsertComment(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// InsertReply persists a reply and fills in its generated id.
func (r *PostRepository) InsertReply(reply *models.Reply) error {
	return r.db.Create(reply).Error
}

// ExistsComment reports whether a comment row exists.
func (r *PostRepository) ExistsComment(commentID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("id = ?", commentID).Count(&count).Error
	return count > 0, err
}

// DeleteCommentByID removes the comment row. Its replies must be removed by
// the caller first; see PostService.DeleteComment.
func (r *PostRepository) DeleteCommentByID(commentID uint) error {
	return r.db.Delete(&models.Comment{}, commentID).Error
}

// DeleteRepliesByCommentID removes every reply under a comment.
func (r *PostRepository) DeleteRepliesByCommentID(commentID uint) error {
	return r.db.Where("comment_id = ?", commentID).Delete(&models.Reply{}).Error
}

// DeleteReplyByID removes a single reply.
func (r *PostRepository) DeleteReplyByID(replyID uint) error {
	return r.db.Delete(&models.Reply{}, replyID).Error
}

// FindCommentsByPostID returns the detail projections of all comments on a
// post, oldest first, without their replies.
func (r *PostRepository) FindCommentsByPostID(postID uint) ([]models.PostCommentDetail, error) {
	var rows []models.PostCommentDetail
	err := r.db.Table("comments").
		Select(`comments.id AS comment_id, comments.content, comments.created_at,
			comments.member_id, members.nickname AS member_nickname, members.profile_url AS member_profile_url,
			(SELECT COUNT(*) FROM comment_likes WHERE comment_likes.comment_id = comments.id) AS like_count`).
		Joins("JOIN members ON members.id = comments.member_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC, comments.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindRepliesByCommentIDs returns the detail projections of all replies under
// the given comments in one query, oldest first.
func (r *PostRepository) FindRepliesByCommentIDs(commentIDs []uint) ([]models.PostReplyDetail, error) {
	if len(commentIDs) == 0 {
		return nil, nil
	}
	var rows []models.PostReplyDetail
	err := r.db.Table("replies").
		Select(`replies.id AS reply_id, replies.comment_id, replies.content, replies.created_at,
			replies.member_id, members.nickname AS member_nickname, members.profile_url AS member_profile_url,
			(SELECT COUNT(*) FROM reply_likes WHERE reply_likes.reply_id = replies.id) AS like_count`).
		Joins("JOIN members ON members.id = replies.member_id").
		Where("replies.comment_id IN ?", commentIDs).
		Order("replies.created_at ASC, replies.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
