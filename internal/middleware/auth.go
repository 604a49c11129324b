package middleware

import (
	"net/http"
	"strings"

	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

// Auth requires a valid access token pinned to the live Redis session.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := resolveToken(c)
		if !ok {
			return
		}
		if userID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "missing authorization header"})
			c.Abort()
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth resolves the principal when a token is present and injects the
// anonymous marker (id 0) when it is not. Public community pages sit behind
// this instead of Auth.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := resolveToken(c)
		if !ok {
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// resolveToken returns (0, true) for anonymous, (id, true) for a valid
// session, and (0, false) after it has already written the 401.
func resolveToken(c *gin.Context) (uint64, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return 0, true
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid authorization format"})
		c.Abort()
		return 0, false
	}

	tokenStr := parts[1]
	claims, err := pkg.ParseAccess(tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
		c.Abort()
		return 0, false
	}

	// redis校验是否是当前会话的token
	userRep := &redis.UserRepository{}
	originToken, err := userRep.GetUserToken(claims.UserID)
	if err != nil || originToken != tokenStr {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "Account has been logging elsewhere"})
		c.Abort()
		return 0, false
	}

	// 校验通过后更新过期时间
	if err = userRep.ExtendUserToken(claims.UserID); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return 0, false
	}

	return claims.UserID, true
}

// UserID reads the injected principal; anonymous is 0.
func UserID(c *gin.Context) uint64 {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}
