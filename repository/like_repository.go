package repository

import (
	"time"

	"gorm.io/gorm/clause"

	"github.com/bluecotton/board/models"
)

// Like rows for posts, comments, and replies, plus the member-scoped batch
// lookups that decorate projections with "liked by me" flags.

// ExistsLike reports whether the member has liked the post.
func (r *PostRepository) ExistsLike(postID, memberID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PostLike{}).
		Where("post_id = ? AND member_id = ?", postID, memberID).Count(&count).Error
	return count > 0, err
}

func (r *PostRepository) InsertLike(postID, memberID uint) error {
	return r.db.Create(&models.PostLike{PostID: postID, MemberID: memberID}).Error
}

func (r *PostRepository) DeleteLike(postID, memberID uint) error {
	return r.db.Where("post_id = ? AND member_id = ?", postID, memberID).
		Delete(&models.PostLike{}).Error
}

// ExistsCommentLike reports whether the member has liked the comment.
func (r *PostRepository) ExistsCommentLike(commentID, memberID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.CommentLike{}).
		Where("comment_id = ? AND member_id = ?", commentID, memberID).Count(&count).Error
	return count > 0, err
}

func (r *PostRepository) InsertCommentLike(commentID, memberID uint) error {
	return r.db.Create(&models.CommentLike{CommentID: commentID, MemberID: memberID}).Error
}

func (r *PostRepository) DeleteCommentLike(commentID, memberID uint) error {
	return r.db.Where("comment_id = ? AND member_id = ?", commentID, memberID).
		Delete(&models.CommentLike{}).Error
}

// ExistsReplyLike reports whether the member has liked the reply.
func (r *PostRepository) ExistsReplyLike(replyID, memberID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.ReplyLike{}).
		Where("reply_id = ? AND member_id = ?", replyID, memberID).Count(&count).Error
	return count > 0, err
}

func (r *PostRepository) InsertReplyLike(replyID, memberID uint) error {
	return r.db.Create(&models.ReplyLike{ReplyID: replyID, MemberID: memberID}).Error
}

func (r *PostRepository) DeleteReplyLike(replyID, memberID uint) error {
	return r.db.Where("reply_id = ? AND member_id = ?", replyID, memberID).
		Delete(&models.ReplyLike{}).Error
}

// LikedPostIDs returns which of the given posts the member has liked.
func (r *PostRepository) LikedPostIDs(memberID uint, postIDs []uint) ([]uint, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.Model(&models.PostLike{}).
		Where("member_id = ? AND post_id IN ?", memberID, postIDs).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// LikedCommentIDs returns which of the given comments the member has liked.
func (r *PostRepository) LikedCommentIDs(memberID uint, commentIDs []uint) ([]uint, error) {
	if len(commentIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.Model(&models.CommentLike{}).
		Where("member_id = ? AND comment_id IN ?", memberID, commentIDs).
		Pluck("comment_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// LikedReplyIDs returns which of the given replies the member has liked.
func (r *PostRepository) LikedReplyIDs(memberID uint, replyIDs []uint) ([]uint, error) {
	if len(replyIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.db.Model(&models.ReplyLike{}).
		Where("member_id = ? AND reply_id IN ?", memberID, replyIDs).
		Pluck("reply_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// InsertPostReport records a post report.
func (r *PostRepository) InsertPostReport(report *models.PostReport) error {
	return r.db.Create(report).Error
}

// InsertCommentReport records a comment report.
func (r *PostRepository) InsertCommentReport(report *models.CommentReport) error {
	return r.db.Create(report).Error
}

// InsertReplyReport records a reply report.
func (r *PostRepository) InsertReplyReport(report *models.ReplyReport) error {
	return r.db.Create(report).Error
}

// UpsertRecentView records that the member viewed the post now, refreshing
// the timestamp of an existing row instead of duplicating it.
func (r *PostRepository) UpsertRecentView(memberID, postID uint, viewedAt time.Time) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "member_id"}, {Name: "post_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"viewed_at": viewedAt}),
	}).Create(&models.RecentView{MemberID: memberID, PostID: postID, ViewedAt: viewedAt}).Error
}
