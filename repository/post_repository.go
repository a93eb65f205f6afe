package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/bluecotton/board/models"
)

// PostRepository is the data access facade for the board. It issues
// parameterized queries through gorm and exposes typed methods; existence
// checks come back as booleans, lookups that miss come back as nil. No
// business rules live here.
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a repository bound to the given DB handle.
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Transaction runs fn against a repository bound to one database
// transaction. Rolls back when fn returns an error.
func (r *PostRepository) Transaction(fn func(tx *PostRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&PostRepository{db: tx})
	})
}

const summaryColumns = `posts.id AS post_id, posts.title, posts.content, posts.image_url,
posts.created_at, posts.read_count,
posts.som_category_id, som_categories.name AS som_category_name,
posts.member_id, members.nickname AS member_nickname, members.profile_url AS member_profile_url,
(SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id) AS like_count,
(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count`

// FindPosts returns the board listing. somCategory filters by category name,
// q is a LIKE search over title and content, orderType selects the ordering
// ("latest" by default, "popular" by like count).
func (r *PostRepository) FindPosts(somCategory, orderType, q string) ([]models.PostSummary, error) {
	query := r.db.Table("posts").
		Select(summaryColumns).
		Joins("JOIN members ON members.id = posts.member_id").
		Joins("JOIN som_categories ON som_categories.id = posts.som_category_id")

	if somCategory != "" {
		query = query.Where("som_categories.name = ?", somCategory)
	}
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("posts.title LIKE ? OR posts.content LIKE ?", like, like)
	}

	switch orderType {
	case "popular":
		query = query.Order("like_count DESC, posts.created_at DESC")
	default: // latest
		query = query.Order("posts.created_at DESC")
	}

	var rows []models.PostSummary
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// InsertPost persists a new post and fills in its generated id.
func (r *PostRepository) InsertPost(post *models.Post) error {
	return r.db.Create(post).Error
}

// ExistsPost reports whether a post row exists.
func (r *PostRepository) ExistsPost(postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error
	return count > 0, err
}

// ExistsPostSince reports whether the member already posted in the category
// on or after the given instant. Backs the one-post-per-category-per-day rule.
func (r *PostRepository) ExistsPostSince(memberID, somCategoryID uint, since time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Post{}).
		Where("member_id = ? AND som_category_id = ? AND created_at >= ?", memberID, somCategoryID, since).
		Count(&count).Error
	return count > 0, err
}

// FindPostDetail returns the detail projection without comments, or nil when
// the post does not exist.
func (r *PostRepository) FindPostDetail(postID uint) (*models.PostDetail, error) {
	var row models.PostDetail
	err := r.db.Table("posts").
		Select(`posts.id AS post_id, posts.title, posts.content, posts.image_url,
			posts.created_at, posts.read_count,
			posts.member_id, members.nickname AS member_nickname, members.profile_url AS member_profile_url,
			(SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id) AS like_count`).
		Joins("JOIN members ON members.id = posts.member_id").
		Where("posts.id = ?", postID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindPostForUpdate returns the reduced edit-form projection, or nil when the
// post does not exist.
func (r *PostRepository) FindPostForUpdate(postID uint) (*models.PostModifyView, error) {
	var row models.PostModifyView
	err := r.db.Table("posts").
		Select("posts.id AS post_id, posts.title, posts.content, posts.image_url, posts.som_category_id").
		Where("posts.id = ?", postID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdatePost rewrites the editable columns of a post.
func (r *PostRepository) UpdatePost(post *models.Post) error {
	return r.db.Model(&models.Post{}).Where("id = ?", post.ID).Updates(map[string]interface{}{
		"title":           post.Title,
		"content":         post.Content,
		"som_category_id": post.SomCategoryID,
		"image_url":       post.ImageURL,
	}).Error
}

// DeletePostByID removes the post row itself. Dependent rows are the
// caller's responsibility; see PostService.Withdraw.
func (r *PostRepository) DeletePostByID(postID uint) error {
	return r.db.Delete(&models.Post{}, postID).Error
}

func (r *PostRepository) DeleteLikesByPostID(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.PostLike{}).Error
}

func (r *PostRepository) DeleteImagesByPostID(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.PostImage{}).Error
}

func (r *PostRepository) DeleteReportsByPostID(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.PostReport{}).Error
}

func (r *PostRepository) DeleteRecentsByPostID(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&models.RecentView{}).Error
}

// AttachImageByURL claims an uploaded image row for a post.
func (r *PostRepository) AttachImageByURL(url string, postID uint) error {
	return r.db.Model(&models.PostImage{}).Where("url = ?", url).Update("post_id", postID).Error
}

// InsertImage inserts an image row already bound to a post. Used for the
// default placeholder when a post is published without uploads.
func (r *PostRepository) InsertImage(path, name string, postID uint) error {
	return r.db.Create(&models.PostImage{
		PostID: &postID,
		URL:    path + "/" + name,
		Path:   path,
		Name:   name,
	}).Error
}

// SetThumbnail marks the image row as the post thumbnail and copies its URL
// onto the post.
func (r *PostRepository) SetThumbnail(url string, postID uint) error {
	if err := r.db.Model(&models.PostImage{}).
		Where("url = ? AND post_id = ?", url, postID).
		Update("is_thumbnail", true).Error; err != nil {
		return err
	}
	return r.db.Model(&models.Post{}).Where("id = ?", postID).Update("image_url", url).Error
}

// IncrementReadCount bumps the read counter by one.
func (r *PostRepository) IncrementReadCount(postID uint) error {
	return r.db.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("read_count", gorm.Expr("read_count + 1")).Error
}

// FindJoinedCategories returns the som categories the member participates in.
func (r *PostRepository) FindJoinedCategories(memberID uint) ([]models.SomCategory, error) {
	var categories []models.SomCategory
	err := r.db.Table("som_categories").
		Select("som_categories.id, som_categories.name").
		Joins("JOIN som_category_members ON som_category_members.som_category_id = som_categories.id").
		Where("som_category_members.member_id = ?", memberID).
		Order("som_categories.id").
		Scan(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
