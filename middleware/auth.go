package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bluecotton/board/utils"
)

const (
	// ContextMemberIDKey is the key used to store the authenticated member id
	// in the Gin context.
	ContextMemberIDKey = "member_id"
	// ContextNicknameKey stores the member nickname inside the Gin context.
	ContextNicknameKey = "nickname"
)

// AuthRequired ensures the request is authenticated via JWT. Private board
// endpoints never run without a member identity in the context.
func AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, errMsg := claimsFromHeader(ctx)
		if claims == nil {
			utils.Error(ctx, http.StatusUnauthorized, errMsg)
			ctx.Abort()
			return
		}

		ctx.Set(ContextMemberIDKey, claims.MemberID)
		ctx.Set(ContextNicknameKey, claims.Nickname)
		ctx.Next()
	}
}

// OptionalAuth extracts the member identity when a valid token is present and
// stays silent otherwise. Public endpoints use it so a logged-in viewer gets
// decorated results while an anonymous one still gets the page.
func OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if claims, _ := claimsFromHeader(ctx); claims != nil {
			ctx.Set(ContextMemberIDKey, claims.MemberID)
			ctx.Set(ContextNicknameKey, claims.Nickname)
		}
		ctx.Next()
	}
}

func claimsFromHeader(ctx *gin.Context) (*utils.Claims, string) {
	authHeader := ctx.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "authorization header missing"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, "invalid authorization header format"
	}

	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return nil, "empty bearer token"
	}

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return nil, "invalid token"
	}
	return claims, ""
}
