package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bluecotton/board/models"
	"github.com/bluecotton/board/repository"
)

// newTestDB opens an isolated in-memory sqlite database migrated with the
// full schema. cache=shared keeps the database alive across the pooled
// connections gorm opens during the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Member{},
		&models.SomCategory{},
		&models.SomCategoryMember{},
		&models.Post{},
		&models.PostImage{},
		&models.Comment{},
		&models.Reply{},
		&models.PostLike{},
		&models.CommentLike{},
		&models.ReplyLike{},
		&models.Draft{},
		&models.PostReport{},
		&models.CommentReport{},
		&models.ReplyReport{},
		&models.RecentView{},
	))
	return db
}

// newTestService seeds two members and two som categories and returns a
// service over the fresh database.
func newTestService(t *testing.T) (*PostService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.Member{ID: 1, Nickname: "hana", ProfileURL: "/p/hana.png"}).Error)
	require.NoError(t, db.Create(&models.Member{ID: 2, Nickname: "duri", ProfileURL: "/p/duri.png"}).Error)
	require.NoError(t, db.Create(&models.SomCategory{ID: 1, Name: "study"}).Error)
	require.NoError(t, db.Create(&models.SomCategory{ID: 2, Name: "free"}).Error)
	require.NoError(t, db.Create(&models.SomCategoryMember{SomCategoryID: 1, MemberID: 1}).Error)
	require.NoError(t, db.Create(&models.SomCategoryMember{SomCategoryID: 2, MemberID: 1}).Error)
	require.NoError(t, db.Create(&models.SomCategoryMember{SomCategoryID: 1, MemberID: 2}).Error)

	return NewPostService(repository.NewPostRepository(db)), db
}

func writePost(t *testing.T, svc *PostService, memberID, categoryID uint, title string) *models.Post {
	t.Helper()
	post := &models.Post{
		MemberID:      memberID,
		SomCategoryID: categoryID,
		Title:         title,
		Content:       "content of " + title,
	}
	require.NoError(t, svc.Write(post, nil, nil))
	return post
}

func uintPtr(v uint) *uint { return &v }
