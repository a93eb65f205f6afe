package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bluecotton/board/middleware"
	"github.com/bluecotton/board/models"
	"github.com/bluecotton/board/services"
	"github.com/bluecotton/board/utils"
)

const listCachePrefix = "cache:posts:list:"

// PostPrivateController serves the authenticated board endpoints under
// /private/post. Every handler resolves the member identity set by the auth
// middleware and passes it into the service explicitly.
type PostPrivateController struct {
	service *services.PostService
}

// NewPostPrivateController creates a controller over the given service.
func NewPostPrivateController(service *services.PostService) *PostPrivateController {
	return &PostPrivateController{service: service}
}

// WritePost publishes a new post for the authenticated member.
func (p *PostPrivateController) WritePost(ctx *gin.Context) {
	var req struct {
		Title         string   `json:"title" binding:"required,min=1"`
		Content       string   `json:"content" binding:"required"`
		SomCategoryID uint     `json:"som_category_id" binding:"required"`
		ImageURLs     []string `json:"image_urls"`
		DraftID       *uint    `json:"draft_id"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	title := utils.Sanitize(strings.TrimSpace(req.Title))
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, "title cannot be empty")
		return
	}
	content := utils.Sanitize(req.Content)

	memberID, ok := getMemberID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	post := models.Post{
		MemberID:      memberID,
		SomCategoryID: req.SomCategoryID,
		Title:         title,
		Content:       content,
	}

	if err := p.service.Write(&post, req.ImageURLs, req.DraftID); err != nil {
		if errors.Is(err, services.ErrDailyPostLimit) {
			utils.Error(ctx, http.StatusConflict, "you already posted in this category today")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to create post")
		return
	}

	utils.InvalidateByPrefix(listCachePrefix)
	utils.Created(ctx, "post created", gin.H{"postId": post.ID})
}

// GetJoinedCategories lists the som categories the member has joined.
func (p *PostPrivateController) GetJoinedCategories(ctx *gin.Context) {
	memberID, ok := getMemberID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	categories, err := p.service.GetJoinedCategories(memberID)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to load categories")
		return
	}
	utils.OK(ctx, "joined categories loaded", categories)
}

// WithdrawPost deletes a post together with its dependent rows.
func (p *PostPrivateController) WithdrawPost(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx.Query("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, "missing post id")
		return
	}

	if err := p.service.Withdraw(postID); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to delete post")
		return
	}

	utils.InvalidateByPrefix(listCachePrefix)
	utils.OK(ctx, "post deleted", nil)
}

// DraftPost saves a draft for the authenticated member.
func (p *PostPrivateController) DraftPost(ctx *gin.Context) {
	var req struct {
		Title         string `json:"title"`
		Content       string `json:"content"`
		SomCategoryID uint   `json:"som_category_id"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	memberID, ok := getMemberID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	draft := models.Draft{
		MemberID:      memberID,
		SomCategoryID: req.SomCategoryID,
		Title:         utils.Sanitize(req.Title),
		Content:       utils.Sanitize(req.Content),
	}
	if err := p.service.RegisterDraft(&draft); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to save draft")
		return
	}
	utils.Created(ctx, "draft saved", gin.H{"draftId": draft.ID})
}

// GetDraft loads one of the member's drafts.
func (p *PostPrivateController) GetDraft(ctx *gin.Context) {
	draftID, ok := parseIDParam(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, "missing draft id")
		return
	}
	memberID, ok := getMemberID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	draft, err := p.service.GetDraft(draftID, memberID)
	if err != nil {
		if errors.Is(err, services.ErrDraftNotFound) {
			utils.Error(ctx, http.StatusNotFound, "draft not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to load draft")
		return
	}
	utils.OK(ctx, "draft loaded", draft)
}

// DeleteDraft removes one of the member's drafts.
func (p *PostPrivateController) DeleteDraft(ctx *gin.Context) {
	draftID, ok := parseIDParam(ctx.Query("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, "missing draft id")
		return
	}
	memberID, ok := getMemberID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := p.service.DeleteDraft(draftID, memberID); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to delete draft")
		return
	}
	utils.OK(ctx, "draft deleted", nil)
}

// GetPostForModify returns the reduced projection for the edit form.
func (p *PostPrivateController) GetPostForModify(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, "missing post id")
		return
	}

	view, err := p.service.GetPostForUpdate(postID)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			utils.Error(ctx, http.StatusNotFound, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to load post")
		return
	}
	utils.OK(ctx, "post loaded", view)
}

// ModifyPost updates an existing post.
func (p *PostPrivateController) ModifyPost(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, "missing post id")
		return
	}

	var req struct {
		Title         string `json:"title" binding:"required,min=1"`
		Content       string `json:"content" binding:"required"`
		SomCategoryID uint   `json:"som_category_id" binding:"required"`
		ImageURL      string `json:"image_url"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	title := utils.Sanitize(strings.TrimSpace(req.Title))
	if title == "" {
		utils.Error(ctx, http.StatusBadRequest, "title cannot be empty")
		return
	}

	post := models.Post{
		ID:            postID,
		Title:         title,
		Content:       utils.Sanitize(req.Content),
		SomCategoryID: req.SomCategoryID,
		ImageURL:      req.ImageURL,
	}
	if err := p.service.ModifyPost(&post); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			utils.Error(ctx, http.StatusNotFound, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to update post")
		return
	}

	utils.InvalidateByPrefix(listCachePrefix)
	utils.OK(ctx, "post updated", nil)
}

// InsertComment attaches a comment to a post.
func (p *PostPrivateController) InsertComment(ctx *gin.Context) {
	var req struct {
		PostID  uint   `json:"post_id" binding:"required"`
		Content string `json:"content" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	content := utils.Sanitize(req.Content)
	if content == "" {
		utils.Error(ctx, http.StatusBadRequest, "content cannot be empty")
		return
	}

	memberID, ok := getMemberID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	comment := models.Comment{PostID: req.PostID, MemberID: memberID, Content: content}
	if err := p.service.InsertComment(&comment); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			utils.Error(ctx, http.StatusNotFound, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to create comment")
		return
	}

	utils.InvalidateByPrefix(listCachePrefix)
	utils.Created(ctx, "comment created", gin.H{"commentId": comment.ID})
}

// InsertReply attaches a reply to a comment.
func (p *PostPrivateController) InsertReply(ctx *gin.Context) {
	var req struct {
		CommentID uint   `json:"comment_id" binding:"required"`
		Content   string `json:"content" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}

	content := utils.Sanitize(req.Content)
	if content == "" {
		utils.Error(ctx, http.StatusBadRequest, "content cannot be empty")
		return
	}

	memberID, ok := getMemberID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	reply := models.Reply{CommentID: req.CommentID, MemberID: memberID, Content: content}
	if err := p.service.InsertReply(&reply); err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			utils.Error(ctx, http.StatusNotFound, "comment not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to create reply")
		return
	}
	utils.Created(ctx, "reply created", gin.H{"replyId": reply.ID})
}

// DeleteComment removes a comment and all of its replies.
func (p *PostPrivateController) DeleteComment(ctx *gin.Context) {
	commentID, ok := parseIDParam(ctx.Param("commentId"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, "missing comment id")
		return
	}

	if err := p.service.DeleteComment(commentID); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to delete comment")
		return
	}

	utils.InvalidateByPrefix(listCachePrefix)
	utils.OK(ctx, "comment and its replies deleted", nil)
}

// DeleteReply removes a single reply.
func (p *PostPrivateController) DeleteReply(ctx *gin.Context) {
	replyID, ok := parseIDParam(ctx.Param("replyId"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, "missing reply id")
		return
	}

	if err := p.service.DeleteReply(replyID); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to delete reply")
		return
	}
	utils.OK(ctx, "reply deleted", nil)
}

// ToggleLike flips the member's like on a post.
func (p *PostPrivateController) ToggleLike(ctx *gin.Context) {
	p.toggle(ctx, "postId", p.service.ToggleLike, "post like toggled")
}

// ToggleCommentLike flips the member's like on a comment.
func (p *PostPrivateController) ToggleCommentLike(ctx *gin.Context) {
	p.toggle(ctx, "commentId", p.service.ToggleCommentLike, "comment like toggled")
}

// ToggleReplyLike flips the member's like on a reply.
func (p *PostPrivateController) ToggleReplyLike(ctx *gin.Context) {
	p.toggle(ctx, "replyId", p.service.ToggleReplyLike, "reply like toggled")
}

func (p *PostPrivateController) toggle(ctx *gin.Context, field string, fn func(subjectID, memberID uint) error, message string) {
	var payload map[string]uint
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	subjectID, present := payload[field]
	if !present || subjectID == 0 {
		utils.Error(ctx, http.StatusBadRequest, "missing "+field)
		return
	}

	memberID, ok := getMemberID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := fn(subjectID, memberID); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to toggle like")
		return
	}

	utils.InvalidateByPrefix(listCachePrefix)
	utils.Created(ctx, message, nil)
}

// RecentPost records that the member viewed a post.
func (p *PostPrivateController) RecentPost(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx.Param("postId"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, "missing post id")
		return
	}
	memberID, ok := getMemberID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := p.service.RegisterRecent(memberID, postID); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to record recent view")
		return
	}
	utils.Created(ctx, "recent view recorded", nil)
}

// ReportPost records a post report by the member.
func (p *PostPrivateController) ReportPost(ctx *gin.Context) {
	var req struct {
		PostID uint   `json:"post_id" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	memberID, ok := getMemberID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	report := models.PostReport{PostID: req.PostID, MemberID: memberID, Reason: utils.Sanitize(req.Reason)}
	if err := p.service.ReportPost(&report); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to report post")
		return
	}
	utils.Created(ctx, "post reported", nil)
}

// ReportComment records a comment report by the member.
func (p *PostPrivateController) ReportComment(ctx *gin.Context) {
	var req struct {
		CommentID uint   `json:"comment_id" binding:"required"`
		Reason    string `json:"reason"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	memberID, ok := getMemberID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	report := models.CommentReport{CommentID: req.CommentID, MemberID: memberID, Reason: utils.Sanitize(req.Reason)}
	if err := p.service.ReportComment(&report); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to report comment")
		return
	}
	utils.Created(ctx, "comment reported", nil)
}

// ReportReply records a reply report by the member.
func (p *PostPrivateController) ReportReply(ctx *gin.Context) {
	var req struct {
		ReplyID uint   `json:"reply_id" binding:"required"`
		Reason  string `json:"reason"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "invalid request payload")
		return
	}
	memberID, ok := getMemberID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "unauthorized")
		return
	}

	report := models.ReplyReport{ReplyID: req.ReplyID, MemberID: memberID, Reason: utils.Sanitize(req.Reason)}
	if err := p.service.ReportReply(&report); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to report reply")
		return
	}
	utils.Created(ctx, "reply reported", nil)
}

func parseIDParam(raw string) (uint, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func getMemberID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(middleware.ContextMemberIDKey)
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	case int64:
		return uint(v), true
	case float64:
		return uint(v), true
	default:
		return 0, false
	}
}

// viewerID returns the optional member identity for public endpoints.
func viewerID(ctx *gin.Context) *uint {
	if id, ok := getMemberID(ctx); ok {
		return &id
	}
	return nil
}
