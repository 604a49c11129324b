package access

import "Hive_Community/internal/model"

// Level is the coarse classification used to gate pages and actions.
// Ordering matters: gates are expressed as AtLeast(level), and a banned or
// pending membership row must never clear a member gate.
type Level int

const (
	LevelAnonymous Level = iota
	LevelBanned
	LevelNotMember
	LevelPending
	LevelMember
	LevelAdmin
	LevelOwner
)

func (l Level) String() string {
	switch l {
	case LevelAnonymous:
		return "anonymous"
	case LevelBanned:
		return "banned"
	case LevelNotMember:
		return "not_member"
	case LevelPending:
		return "pending"
	case LevelMember:
		return "member"
	case LevelAdmin:
		return "admin"
	case LevelOwner:
		return "owner"
	}
	return "unknown"
}

func (l Level) AtLeast(min Level) bool { return l >= min }

// Classify maps a principal and its membership row (nil = no row) to a level.
// Status is folded in: pending and banned rows rank below member regardless
// of role. No principal means anonymous even if a row somehow exists.
func Classify(userID uint64, m *model.Membership) Level {
	if userID == 0 {
		return LevelAnonymous
	}
	if m == nil {
		return LevelNotMember
	}
	switch m.Status {
	case model.MemberStatusBanned:
		return LevelBanned
	case model.MemberStatusPending:
		return LevelPending
	}
	switch m.Role {
	case model.MemberRoleOwner:
		return LevelOwner
	case model.MemberRoleAdmin:
		return LevelAdmin
	}
	return LevelMember
}
