package access

import (
	"errors"

	"Hive_Community/internal/model"
)

var ErrNotInitialized = errors.New("access: context not initialized")

// Context is the request-scoped authorization state for one community route.
// It is resolved once by middleware and read-only for descendants; the only
// legal mutation is refreshing the level after a join/leave succeeded.
type Context struct {
	CommunityID uint64
	Slug        string
	UserID      uint64
	Level       Level
	Role        int
	Status      int8
	Private     bool

	populated bool
}

// Resolve builds a populated Context from the lookup results.
func Resolve(community *model.Community, userID uint64, m *model.Membership) *Context {
	ctx := &Context{
		CommunityID: community.ID,
		Slug:        community.Slug,
		UserID:      userID,
		Level:       Classify(userID, m),
		Private:     community.Private,
		populated:   true,
	}
	if m != nil {
		ctx.Role = m.Role
		ctx.Status = m.Status
	}
	return ctx
}

// Check panics when the context was read before population. This is a
// programming error and must not silently degrade to anonymous.
func (c *Context) Check() {
	if c == nil || !c.populated {
		panic(ErrNotInitialized)
	}
}

// SetLevel refreshes the level after a join or leave completed.
func (c *Context) SetLevel(l Level) {
	c.Check()
	c.Level = l
}
