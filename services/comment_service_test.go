package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluecotton/board/models"
)

func TestInsertCommentRequiresExistingPost(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.InsertComment(&models.Comment{PostID: 999, MemberID: 1, Content: "into the void"})
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestInsertReplyRequiresExistingComment(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.InsertReply(&models.Reply{CommentID: 999, MemberID: 1, Content: "into the void"})
	require.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeleteCommentCascadesReplies(t *testing.T) {
	svc, db := newTestService(t)
	post := writePost(t, svc, 1, 1, "threaded")

	comment := &models.Comment{PostID: post.ID, MemberID: 1, Content: "root"}
	require.NoError(t, svc.InsertComment(comment))

	replyIDs := make([]uint, 0, 3)
	for i := 0; i < 3; i++ {
		reply := &models.Reply{CommentID: comment.ID, MemberID: 2, Content: "r"}
		require.NoError(t, svc.InsertReply(reply))
		replyIDs = append(replyIDs, reply.ID)
	}

	// An unrelated comment's reply must survive.
	other := &models.Comment{PostID: post.ID, MemberID: 2, Content: "other"}
	require.NoError(t, svc.InsertComment(other))
	otherReply := &models.Reply{CommentID: other.ID, MemberID: 1, Content: "keep me"}
	require.NoError(t, svc.InsertReply(otherReply))

	require.NoError(t, svc.DeleteComment(comment.ID))

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count).Error)
	assert.Zero(t, count)

	for _, id := range replyIDs {
		require.NoError(t, db.Model(&models.Reply{}).Where("id = ?", id).Count(&count).Error)
		assert.Zerof(t, count, "reply %d should be gone", id)
	}

	require.NoError(t, db.Model(&models.Reply{}).Where("id = ?", otherReply.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteReplyLeavesCommentIntact(t *testing.T) {
	svc, db := newTestService(t)
	post := writePost(t, svc, 1, 1, "threaded")

	comment := &models.Comment{PostID: post.ID, MemberID: 1, Content: "root"}
	require.NoError(t, svc.InsertComment(comment))
	reply := &models.Reply{CommentID: comment.ID, MemberID: 2, Content: "bye"}
	require.NoError(t, svc.InsertReply(reply))

	require.NoError(t, svc.DeleteReply(reply.ID))

	var count int64
	require.NoError(t, db.Model(&models.Reply{}).Where("id = ?", reply.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Comment{}).Where("id = ?", comment.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
