package services

import (
	"time"

	"github.com/bluecotton/board/models"
	"github.com/bluecotton/board/repository"
	"github.com/bluecotton/board/utils"
)

// Placeholder attached when a post is published without any uploaded images.
const (
	defaultImagePath = "/static/images"
	defaultImageName = "default-post.png"
)

// PostService holds all conditional logic of the board: the daily posting
// limit, like toggling, viewer-dependent projections, and the multi-step
// writes. Viewer identity is always an explicit parameter; nothing is read
// from ambient state.
type PostService struct {
	repo *repository.PostRepository
}

// NewPostService creates a PostService over the given repository.
func NewPostService(repo *repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// Write publishes a post: it rejects a second post in the same som category
// on the same calendar day, persists the post, claims the uploaded images,
// designates the first one as thumbnail, and removes the originating draft
// when the post was written from one. Runs in one transaction.
func (s *PostService) Write(post *models.Post, imageURLs []string, draftID *uint) error {
	dayStart := startOfToday()

	return s.repo.Transaction(func(tx *repository.PostRepository) error {
		exists, err := tx.ExistsPostSince(post.MemberID, post.SomCategoryID, dayStart)
		if err != nil {
			return err
		}
		if exists {
			return ErrDailyPostLimit
		}

		if err := tx.InsertPost(post); err != nil {
			return err
		}

		if len(imageURLs) > 0 {
			for _, url := range imageURLs {
				if err := tx.AttachImageByURL(url, post.ID); err != nil {
					return err
				}
			}
			if err := tx.SetThumbnail(imageURLs[0], post.ID); err != nil {
				return err
			}
			post.ImageURL = imageURLs[0]
		} else {
			if err := tx.InsertImage(defaultImagePath, defaultImageName, post.ID); err != nil {
				return err
			}
			if err := tx.SetThumbnail(defaultImagePath+"/"+defaultImageName, post.ID); err != nil {
				return err
			}
			post.ImageURL = defaultImagePath + "/" + defaultImageName
		}

		if draftID != nil {
			if err := tx.DeleteDraftByID(*draftID, post.MemberID); err != nil {
				return err
			}
		}
		return nil
	})
}

// Withdraw deletes a post together with its likes, images, reports, and
// recent-view rows. The store declares no cascading foreign keys, so each
// dependent table is cleared explicitly inside one transaction.
func (s *PostService) Withdraw(postID uint) error {
	return s.repo.Transaction(func(tx *repository.PostRepository) error {
		if err := tx.DeleteLikesByPostID(postID); err != nil {
			return err
		}
		if err := tx.DeleteImagesByPostID(postID); err != nil {
			return err
		}
		if err := tx.DeleteReportsByPostID(postID); err != nil {
			return err
		}
		if err := tx.DeleteRecentsByPostID(postID); err != nil {
			return err
		}
		return tx.DeletePostByID(postID)
	})
}

// GetPostForUpdate returns the reduced projection that populates the edit
// form.
func (s *PostService) GetPostForUpdate(postID uint) (*models.PostModifyView, error) {
	view, err := s.repo.FindPostForUpdate(postID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, ErrPostNotFound
	}
	return view, nil
}

// ModifyPost rewrites the editable fields of an existing post.
func (s *PostService) ModifyPost(post *models.Post) error {
	existing, err := s.repo.FindPostForUpdate(post.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}
	return s.repo.UpdatePost(post)
}

// GetJoinedCategories returns the som categories the member participates in.
func (s *PostService) GetJoinedCategories(memberID uint) ([]models.SomCategory, error) {
	return s.repo.FindJoinedCategories(memberID)
}

// GetPosts returns the board listing. When viewerID is present each item is
// decorated with the viewer's like state; the flag is absent otherwise.
func (s *PostService) GetPosts(somCategory, orderType, q string, viewerID *uint) ([]models.PostSummary, error) {
	posts, err := s.repo.FindPosts(somCategory, orderType, q)
	if err != nil {
		return nil, err
	}
	if viewerID == nil || len(posts) == 0 {
		return posts, nil
	}

	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.PostID)
	}
	liked, err := s.repo.LikedPostIDs(*viewerID, ids)
	if err != nil {
		return nil, err
	}
	likedSet := toSet(liked)
	for i := range posts {
		posts[i].IsLiked = boolPtr(likedSet[posts[i].PostID])
	}
	return posts, nil
}

// GetPostDetail returns the full detail view of one post. The underlying
// load is identical for every caller; when viewerID is present a projection
// step fills in the liked-by-me flags on the post, its comments, and its
// replies. Every successful fetch bumps the read counter; a failed bump is
// logged and swallowed since it does not affect the view.
func (s *PostService) GetPostDetail(postID uint, viewerID *uint) (*models.PostDetail, error) {
	detail, err := s.repo.FindPostDetail(postID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrPostNotFound
	}

	comments, err := s.repo.FindCommentsByPostID(postID)
	if err != nil {
		return nil, err
	}
	commentIDs := make([]uint, 0, len(comments))
	for _, c := range comments {
		commentIDs = append(commentIDs, c.CommentID)
	}

	replies, err := s.repo.FindRepliesByCommentIDs(commentIDs)
	if err != nil {
		return nil, err
	}

	if viewerID != nil {
		if err := s.decorateDetail(detail, comments, replies, *viewerID); err != nil {
			return nil, err
		}
	}

	byComment := make(map[uint][]models.PostReplyDetail, len(comments))
	for _, rep := range replies {
		byComment[rep.CommentID] = append(byComment[rep.CommentID], rep)
	}
	for i := range comments {
		comments[i].Replies = byComment[comments[i].CommentID]
		if comments[i].Replies == nil {
			comments[i].Replies = []models.PostReplyDetail{}
		}
	}
	detail.Comments = comments
	if detail.Comments == nil {
		detail.Comments = []models.PostCommentDetail{}
	}

	if err := s.repo.IncrementReadCount(postID); err != nil {
		if utils.Sugar != nil {
			utils.Sugar.Warnf("read count increment failed for post %d: %v", postID, err)
		}
	}

	return detail, nil
}

// decorateDetail fills in the liked-by-me flags for one viewer.
func (s *PostService) decorateDetail(detail *models.PostDetail, comments []models.PostCommentDetail, replies []models.PostReplyDetail, viewerID uint) error {
	likedPosts, err := s.repo.LikedPostIDs(viewerID, []uint{detail.PostID})
	if err != nil {
		return err
	}
	detail.IsLiked = boolPtr(len(likedPosts) > 0)

	commentIDs := make([]uint, 0, len(comments))
	for _, c := range comments {
		commentIDs = append(commentIDs, c.CommentID)
	}
	likedComments, err := s.repo.LikedCommentIDs(viewerID, commentIDs)
	if err != nil {
		return err
	}
	likedCommentSet := toSet(likedComments)
	for i := range comments {
		comments[i].IsLiked = boolPtr(likedCommentSet[comments[i].CommentID])
	}

	replyIDs := make([]uint, 0, len(replies))
	for _, rep := range replies {
		replyIDs = append(replyIDs, rep.ReplyID)
	}
	likedReplies, err := s.repo.LikedReplyIDs(viewerID, replyIDs)
	if err != nil {
		return err
	}
	likedReplySet := toSet(likedReplies)
	for i := range replies {
		replies[i].IsLiked = boolPtr(likedReplySet[replies[i].ReplyID])
	}
	return nil
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func toSet(ids []uint) map[uint]bool {
	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func boolPtr(v bool) *bool {
	return &v
}
