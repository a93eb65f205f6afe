package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bluecotton/board/services"
	"github.com/bluecotton/board/utils"
)

// PostPublicController serves the anonymous-readable endpoints under
// /main/post. A logged-in viewer passing a valid token gets per-item like
// flags; everyone else gets the same payload without them.
type PostPublicController struct {
	service *services.PostService
}

// NewPostPublicController creates a controller over the given service.
func NewPostPublicController(service *services.PostService) *PostPublicController {
	return &PostPublicController{service: service}
}

// GetAllPosts returns the board listing, optionally filtered by som category
// and search term and ordered by orderType (latest by default).
func (p *PostPublicController) GetAllPosts(ctx *gin.Context) {
	somCategory := strings.TrimSpace(ctx.Query("somCategory"))
	orderType := strings.TrimSpace(ctx.DefaultQuery("orderType", "latest"))
	q := strings.TrimSpace(ctx.Query("q"))
	viewer := viewerID(ctx)

	// Anonymous listings without a search term are cacheable; viewer
	// decoration and searches always hit the database.
	cacheable := viewer == nil && q == ""
	cacheKey := fmt.Sprintf("%scat=%s:order=%s", listCachePrefix, somCategory, orderType)
	if cacheable {
		if b, ok := utils.CacheGetBytes(cacheKey); ok {
			ctx.Data(http.StatusOK, "application/json", b)
			return
		}
	}

	posts, err := p.service.GetPosts(somCategory, orderType, q, viewer)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to list posts")
		return
	}

	if cacheable {
		wrapper := utils.JSONResponse{Message: "posts loaded", Data: posts}
		utils.CacheSetJSON(cacheKey, wrapper, time.Hour)
	}
	utils.OK(ctx, "posts loaded", posts)
}

// GetPost returns the detail view of one post and bumps its read counter.
// Never cached: the read-count side effect must reach the database on every
// view.
func (p *PostPublicController) GetPost(ctx *gin.Context) {
	postID, ok := parseIDParam(ctx.Param("id"))
	if !ok {
		utils.Error(ctx, http.StatusBadRequest, "missing post id")
		return
	}

	detail, err := p.service.GetPostDetail(postID, viewerID(ctx))
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			utils.Error(ctx, http.StatusNotFound, "post not found")
			return
		}
		utils.Error(ctx, http.StatusInternalServerError, "failed to load post")
		return
	}
	utils.OK(ctx, "post detail loaded", detail)
}
