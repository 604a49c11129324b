package middleware

import (
	"net/http"

	"Hive_Community/internal/access"
	"Hive_Community/internal/model"
	"Hive_Community/internal/repository/mysql"

	"github.com/gin-gonic/gin"
)

const (
	ContextAccessKey    = "access_context"
	ContextCommunityKey = "community"
)

// CommunityAccess resolves slug → community → membership → access level once
// per request and stores the populated context for every descendant handler.
// Inactive or missing slugs end here with a 404.
func CommunityAccess(communities *mysql.CommunityRepository, members *mysql.MembershipRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		community, found, err := communities.FindBySlug(slug)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": "community lookup failed"})
			return
		}
		if !found {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"msg": "community not found"})
			return
		}

		userID := UserID(c)
		var membership *model.Membership
		if userID != 0 {
			m, ok, err := members.Get(community.ID, userID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": "membership lookup failed"})
				return
			}
			if ok {
				membership = m
			}
		}

		c.Set(ContextCommunityKey, community)
		c.Set(ContextAccessKey, access.Resolve(community, userID, membership))
		c.Next()
	}
}

// MustAccess returns the populated access context. Reading it on a route that
// never ran CommunityAccess is a programming error and panics loudly instead
// of defaulting to anonymous.
func MustAccess(c *gin.Context) *access.Context {
	v, ok := c.Get(ContextAccessKey)
	if !ok {
		panic(access.ErrNotInitialized)
	}
	ac := v.(*access.Context)
	ac.Check()
	return ac
}

// Community returns the resolved community row for the current route.
func Community(c *gin.Context) *model.Community {
	v, ok := c.Get(ContextCommunityKey)
	if !ok {
		panic(access.ErrNotInitialized)
	}
	return v.(*model.Community)
}
