package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluecotton/board/models"
)

// seedBoard builds two posts with explicit timestamps so listing fixtures
// can be inserted directly without tripping the daily posting limit.
func seedBoard() (older, newer *models.Post) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	older = &models.Post{MemberID: 1, SomCategoryID: 1, Title: "older study note", Content: "alpha", CreatedAt: base}
	newer = &models.Post{MemberID: 2, SomCategoryID: 2, Title: "fresh question", Content: "beta", CreatedAt: base.Add(2 * time.Hour)}
	return older, newer
}

func TestGetPostDetailProjectionsAgree(t *testing.T) {
	svc, _ := newTestService(t)
	post := writePost(t, svc, 1, 1, "projected")

	comment := &models.Comment{PostID: post.ID, MemberID: 2, Content: "first"}
	require.NoError(t, svc.InsertComment(comment))
	reply := &models.Reply{CommentID: comment.ID, MemberID: 1, Content: "second"}
	require.NoError(t, svc.InsertReply(reply))

	require.NoError(t, svc.ToggleLike(post.ID, 2))
	require.NoError(t, svc.ToggleCommentLike(comment.ID, 2))

	anon, err := svc.GetPostDetail(post.ID, nil)
	require.NoError(t, err)
	viewer, err := svc.GetPostDetail(post.ID, uintPtr(2))
	require.NoError(t, err)

	// The anonymous shape carries no liked-by-me flags at any level.
	assert.Nil(t, anon.IsLiked)
	require.Len(t, anon.Comments, 1)
	assert.Nil(t, anon.Comments[0].IsLiked)
	require.Len(t, anon.Comments[0].Replies, 1)
	assert.Nil(t, anon.Comments[0].Replies[0].IsLiked)

	// The viewer shape carries them everywhere.
	require.NotNil(t, viewer.IsLiked)
	assert.True(t, *viewer.IsLiked)
	require.NotNil(t, viewer.Comments[0].IsLiked)
	assert.True(t, *viewer.Comments[0].IsLiked)
	require.NotNil(t, viewer.Comments[0].Replies[0].IsLiked)
	assert.False(t, *viewer.Comments[0].Replies[0].IsLiked)

	// Base fields agree. The read counter is skipped since each fetch bumps it.
	assert.Equal(t, anon.PostID, viewer.PostID)
	assert.Equal(t, anon.Title, viewer.Title)
	assert.Equal(t, anon.Content, viewer.Content)
	assert.Equal(t, anon.ImageURL, viewer.ImageURL)
	assert.Equal(t, anon.MemberID, viewer.MemberID)
	assert.Equal(t, anon.MemberNickname, viewer.MemberNickname)
	assert.Equal(t, anon.LikeCount, viewer.LikeCount)
	assert.Equal(t, anon.Comments[0].CommentID, viewer.Comments[0].CommentID)
	assert.Equal(t, anon.Comments[0].Content, viewer.Comments[0].Content)
	assert.Equal(t, anon.Comments[0].LikeCount, viewer.Comments[0].LikeCount)
	assert.Equal(t, anon.Comments[0].Replies[0].ReplyID, viewer.Comments[0].Replies[0].ReplyID)
	assert.Equal(t, anon.Comments[0].Replies[0].Content, viewer.Comments[0].Replies[0].Content)
}

func TestGetPostDetailIncrementsReadCount(t *testing.T) {
	svc, db := newTestService(t)
	post := writePost(t, svc, 1, 1, "counted")

	_, err := svc.GetPostDetail(post.ID, nil)
	require.NoError(t, err)
	_, err = svc.GetPostDetail(post.ID, uintPtr(2))
	require.NoError(t, err)

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.EqualValues(t, 2, stored.ReadCount)
}

func TestGetPostDetailMissing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetPostDetail(404, nil)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetPostsLatestOrdering(t *testing.T) {
	svc, db := newTestService(t)
	older, newer := seedBoard()
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Create(newer).Error)

	posts, err := svc.GetPosts("", "latest", "", nil)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].PostID)
	assert.Equal(t, older.ID, posts[1].PostID)
	for _, p := range posts {
		assert.Nil(t, p.IsLiked, "anonymous listing must carry no like flags")
	}
}

func TestGetPostsPopularOrdering(t *testing.T) {
	svc, db := newTestService(t)
	older, newer := seedBoard()
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Create(newer).Error)

	// The older post collects two likes, the newer one none.
	require.NoError(t, svc.ToggleLike(older.ID, 1))
	require.NoError(t, svc.ToggleLike(older.ID, 2))

	posts, err := svc.GetPosts("", "popular", "", nil)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, older.ID, posts[0].PostID)
	assert.EqualValues(t, 2, posts[0].LikeCount)
}

func TestGetPostsCategoryFilterAndSearch(t *testing.T) {
	svc, db := newTestService(t)
	older, newer := seedBoard()
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Create(newer).Error)

	posts, err := svc.GetPosts("study", "latest", "", nil)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, older.ID, posts[0].PostID)
	assert.Equal(t, "study", posts[0].SomCategoryName)

	posts, err = svc.GetPosts("", "latest", "fresh", nil)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, newer.ID, posts[0].PostID)

	posts, err = svc.GetPosts("", "latest", "beta", nil)
	require.NoError(t, err)
	require.Len(t, posts, 1, "search must also cover content")
}

func TestGetPostsViewerDecoration(t *testing.T) {
	svc, db := newTestService(t)
	older, newer := seedBoard()
	require.NoError(t, db.Create(older).Error)
	require.NoError(t, db.Create(newer).Error)

	require.NoError(t, svc.ToggleLike(older.ID, 2))

	posts, err := svc.GetPosts("", "latest", "", uintPtr(2))
	require.NoError(t, err)
	require.Len(t, posts, 2)

	byID := map[uint]models.PostSummary{}
	for _, p := range posts {
		byID[p.PostID] = p
	}
	require.NotNil(t, byID[older.ID].IsLiked)
	assert.True(t, *byID[older.ID].IsLiked)
	require.NotNil(t, byID[newer.ID].IsLiked)
	assert.False(t, *byID[newer.ID].IsLiked)

	// Comment counts ride along on the summary.
	comment := &models.Comment{PostID: newer.ID, MemberID: 1, Content: "hello"}
	require.NoError(t, svc.InsertComment(comment))
	posts, err = svc.GetPosts("", "latest", "", nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, posts[0].CommentCount)
}
