package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluecotton/board/models"
)

func TestToggleLikeDoubleToggleIsNoop(t *testing.T) {
	svc, db := newTestService(t)
	post := writePost(t, svc, 1, 1, "likeable")

	likeCount := func() int64 {
		var count int64
		require.NoError(t, db.Model(&models.PostLike{}).Where("post_id = ?", post.ID).Count(&count).Error)
		return count
	}

	require.NoError(t, svc.ToggleLike(post.ID, 2))
	assert.EqualValues(t, 1, likeCount())

	require.NoError(t, svc.ToggleLike(post.ID, 2))
	assert.EqualValues(t, 0, likeCount())

	// Likes from different members are independent rows.
	require.NoError(t, svc.ToggleLike(post.ID, 1))
	require.NoError(t, svc.ToggleLike(post.ID, 2))
	assert.EqualValues(t, 2, likeCount())
}

func TestToggleCommentLikeDoubleToggleIsNoop(t *testing.T) {
	svc, db := newTestService(t)
	post := writePost(t, svc, 1, 1, "commented")

	comment := &models.Comment{PostID: post.ID, MemberID: 2, Content: "nice"}
	require.NoError(t, svc.InsertComment(comment))

	require.NoError(t, svc.ToggleCommentLike(comment.ID, 1))
	require.NoError(t, svc.ToggleCommentLike(comment.ID, 1))

	var count int64
	require.NoError(t, db.Model(&models.CommentLike{}).Where("comment_id = ?", comment.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestToggleReplyLikeDoubleToggleIsNoop(t *testing.T) {
	svc, db := newTestService(t)
	post := writePost(t, svc, 1, 1, "replied")

	comment := &models.Comment{PostID: post.ID, MemberID: 2, Content: "nice"}
	require.NoError(t, svc.InsertComment(comment))
	reply := &models.Reply{CommentID: comment.ID, MemberID: 1, Content: "thanks"}
	require.NoError(t, svc.InsertReply(reply))

	require.NoError(t, svc.ToggleReplyLike(reply.ID, 2))
	require.NoError(t, svc.ToggleReplyLike(reply.ID, 2))

	var count int64
	require.NoError(t, db.Model(&models.ReplyLike{}).Where("reply_id = ?", reply.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDuplicateLikeRowRejectedByUniqueIndex(t *testing.T) {
	_, db := newTestService(t)

	require.NoError(t, db.Create(&models.PostLike{PostID: 7, MemberID: 1}).Error)
	err := db.Create(&models.PostLike{PostID: 7, MemberID: 1}).Error
	require.Error(t, err)
}

func TestReportsAreAppendOnly(t *testing.T) {
	svc, db := newTestService(t)
	post := writePost(t, svc, 1, 1, "reportable")

	// No dedup: the same reporter can file twice.
	require.NoError(t, svc.ReportPost(&models.PostReport{PostID: post.ID, MemberID: 2, Reason: "spam"}))
	require.NoError(t, svc.ReportPost(&models.PostReport{PostID: post.ID, MemberID: 2, Reason: "still spam"}))

	var count int64
	require.NoError(t, db.Model(&models.PostReport{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestReportCommentAndReply(t *testing.T) {
	svc, db := newTestService(t)
	post := writePost(t, svc, 1, 1, "reportable")

	comment := &models.Comment{PostID: post.ID, MemberID: 2, Content: "rude"}
	require.NoError(t, svc.InsertComment(comment))
	reply := &models.Reply{CommentID: comment.ID, MemberID: 1, Content: "ruder"}
	require.NoError(t, svc.InsertReply(reply))

	require.NoError(t, svc.ReportComment(&models.CommentReport{CommentID: comment.ID, MemberID: 1, Reason: "abuse"}))
	require.NoError(t, svc.ReportReply(&models.ReplyReport{ReplyID: reply.ID, MemberID: 2, Reason: "abuse"}))

	var commentReports, replyReports int64
	require.NoError(t, db.Model(&models.CommentReport{}).Count(&commentReports).Error)
	require.NoError(t, db.Model(&models.ReplyReport{}).Count(&replyReports).Error)
	assert.EqualValues(t, 1, commentReports)
	assert.EqualValues(t, 1, replyReports)
}

func TestRegisterRecentUpsertsSingleRow(t *testing.T) {
	svc, db := newTestService(t)
	post := writePost(t, svc, 1, 1, "viewed")

	require.NoError(t, svc.RegisterRecent(2, post.ID))

	var first models.RecentView
	require.NoError(t, db.Where("member_id = ? AND post_id = ?", 2, post.ID).Take(&first).Error)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, svc.RegisterRecent(2, post.ID))

	var rows []models.RecentView
	require.NoError(t, db.Where("member_id = ? AND post_id = ?", 2, post.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].ViewedAt.After(first.ViewedAt) || rows[0].ViewedAt.Equal(first.ViewedAt))
	assert.Equal(t, first.ID, rows[0].ID)
}
