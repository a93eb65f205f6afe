package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluecotton/board/models"
)

func TestWriteDailyLimitPerMemberAndCategory(t *testing.T) {
	svc, _ := newTestService(t)

	writePost(t, svc, 1, 1, "first in study")

	// Same member, same category, same day: rejected.
	second := &models.Post{MemberID: 1, SomCategoryID: 1, Title: "second", Content: "x"}
	err := svc.Write(second, nil, nil)
	require.ErrorIs(t, err, ErrDailyPostLimit)

	// Same member, different category: allowed.
	writePost(t, svc, 1, 2, "first in free")

	// Different member, same category: allowed — the limit is per member.
	writePost(t, svc, 2, 1, "duri in study")
}

func TestWriteRejectedPostLeavesNoRow(t *testing.T) {
	svc, db := newTestService(t)

	writePost(t, svc, 1, 1, "first")
	err := svc.Write(&models.Post{MemberID: 1, SomCategoryID: 1, Title: "second", Content: "x"}, nil, nil)
	require.ErrorIs(t, err, ErrDailyPostLimit)

	var count int64
	require.NoError(t, db.Model(&models.Post{}).Where("member_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestWriteAttachesImagesAndThumbnail(t *testing.T) {
	svc, db := newTestService(t)

	// The upload service has already stored two images with no post id.
	require.NoError(t, db.Create(&models.PostImage{URL: "/static/uploads/a.png"}).Error)
	require.NoError(t, db.Create(&models.PostImage{URL: "/static/uploads/b.png"}).Error)

	post := &models.Post{MemberID: 1, SomCategoryID: 1, Title: "with images", Content: "x"}
	require.NoError(t, svc.Write(post, []string{"/static/uploads/a.png", "/static/uploads/b.png"}, nil))

	var images []models.PostImage
	require.NoError(t, db.Where("post_id = ?", post.ID).Order("id").Find(&images).Error)
	require.Len(t, images, 2)
	assert.True(t, images[0].IsThumbnail)
	assert.False(t, images[1].IsThumbnail)

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, "/static/uploads/a.png", stored.ImageURL)
}

func TestWriteWithoutImagesUsesDefault(t *testing.T) {
	svc, db := newTestService(t)

	post := writePost(t, svc, 1, 1, "plain")

	var images []models.PostImage
	require.NoError(t, db.Where("post_id = ?", post.ID).Find(&images).Error)
	require.Len(t, images, 1)
	assert.True(t, images[0].IsThumbnail)

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, defaultImagePath+"/"+defaultImageName, stored.ImageURL)
}

func TestWriteFromDraftDeletesDraft(t *testing.T) {
	svc, _ := newTestService(t)

	draft := &models.Draft{MemberID: 1, SomCategoryID: 1, Title: "wip", Content: "draft body"}
	require.NoError(t, svc.RegisterDraft(draft))

	post := &models.Post{MemberID: 1, SomCategoryID: 1, Title: "published", Content: "final body"}
	require.NoError(t, svc.Write(post, nil, uintPtr(draft.ID)))

	_, err := svc.GetDraft(draft.ID, 1)
	require.ErrorIs(t, err, ErrDraftNotFound)
}

func TestWithdrawDeletesDependentRows(t *testing.T) {
	svc, db := newTestService(t)

	post := writePost(t, svc, 1, 1, "doomed")
	require.NoError(t, svc.ToggleLike(post.ID, 2))
	require.NoError(t, svc.ReportPost(&models.PostReport{PostID: post.ID, MemberID: 2, Reason: "spam"}))
	require.NoError(t, svc.RegisterRecent(2, post.ID))

	require.NoError(t, svc.Withdraw(post.ID))

	for name, model := range map[string]interface{}{
		"post":   &models.Post{},
		"like":   &models.PostLike{},
		"image":  &models.PostImage{},
		"report": &models.PostReport{},
		"recent": &models.RecentView{},
	} {
		var count int64
		col := "post_id"
		if name == "post" {
			col = "id"
		}
		require.NoError(t, db.Model(model).Where(col+" = ?", post.ID).Count(&count).Error)
		assert.Zerof(t, count, "%s rows should be gone", name)
	}
}

func TestGetPostForUpdateReturnsReducedProjection(t *testing.T) {
	svc, _ := newTestService(t)

	post := writePost(t, svc, 1, 1, "editable")

	view, err := svc.GetPostForUpdate(post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, view.PostID)
	assert.Equal(t, "editable", view.Title)
	assert.Equal(t, post.SomCategoryID, view.SomCategoryID)
}

func TestGetPostForUpdateMissing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetPostForUpdate(999)
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestModifyPostRewritesFields(t *testing.T) {
	svc, db := newTestService(t)

	post := writePost(t, svc, 1, 1, "before")

	require.NoError(t, svc.ModifyPost(&models.Post{
		ID:            post.ID,
		Title:         "after",
		Content:       "new content",
		SomCategoryID: 2,
		ImageURL:      "/static/uploads/new.png",
	}))

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, "after", stored.Title)
	assert.Equal(t, "new content", stored.Content)
	assert.EqualValues(t, 2, stored.SomCategoryID)
	assert.Equal(t, "/static/uploads/new.png", stored.ImageURL)
}

func TestModifyPostMissing(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.ModifyPost(&models.Post{ID: 999, Title: "x", Content: "y", SomCategoryID: 1})
	require.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetJoinedCategories(t *testing.T) {
	svc, _ := newTestService(t)

	categories, err := svc.GetJoinedCategories(1)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "study", categories[0].Name)
	assert.Equal(t, "free", categories[1].Name)

	categories, err = svc.GetJoinedCategories(2)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "study", categories[0].Name)
}
