package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"Hive_Community/internal/model"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,62}$`)

type CommunityService struct {
	repo    *mysql.CommunityRepository
	members *mysql.MembershipRepository
	notify  *NotificationService
}

func NewCommunityService(notify *NotificationService) *CommunityService {
	return &CommunityService{
		repo:    &mysql.CommunityRepository{DB: mysql.DB},
		members: &mysql.MembershipRepository{DB: mysql.DB},
		notify:  notify,
	}
}

func (s *CommunityService) Create(userID uint64, slug, name, desc string, private bool, priceCents int64) (*model.Community, *pkg.AppError) {
	if name == "" {
		return nil, pkg.E(pkg.CodeInvalidParams, "community name required")
	}
	if !slugPattern.MatchString(slug) {
		return nil, pkg.E(pkg.CodeInvalidParams, "invalid slug")
	}
	if priceCents < 0 {
		return nil, pkg.E(pkg.CodeInvalidParams, "invalid price")
	}

	community := &model.Community{
		Slug:        slug,
		Name:        name,
		Description: desc,
		CreatorID:   userID,
		Private:     private,
		Active:      true,
		PriceCents:  priceCents,
	}

	if err := s.repo.CreateWithOwner(community); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkg.E(pkg.CodeConflict, "slug already taken")
		}
		return nil, pkg.Wrap(pkg.CodeInternal, "create community failed", err)
	}
	return community, nil
}

// GetBySlug resolves a slug to an active community; missing or soft-deleted
// communities are a terminal not-found.
func (s *CommunityService) GetBySlug(slug string) (*model.Community, *pkg.AppError) {
	community, found, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "lookup failed", err)
	}
	if !found {
		return nil, pkg.E(pkg.CodeNotFound, "community not found")
	}
	return community, nil
}

// Join is idempotent. Public communities grant an active member row; private
// ones create a pending request and notify the admins.
func (s *CommunityService) Join(ctx context.Context, userID uint64, community *model.Community) (int8, *pkg.AppError) {
	status := model.MemberStatusActive
	if community.Private {
		status = model.MemberStatusPending
	}

	inserted, err := s.members.Join(community.ID, userID, model.MemberRoleMember, status)
	if err != nil {
		return 0, pkg.Wrap(pkg.CodeInternal, "join failed", err)
	}
	if !inserted {
		// 已有成员记录，返回当前状态
		m, found, err := s.members.Get(community.ID, userID)
		if err != nil || !found {
			return status, nil
		}
		return m.Status, nil
	}

	if status == model.MemberStatusPending {
		admins, err := s.members.AdminIDs(community.ID)
		if err == nil {
			// 审核请求通知；失败不影响 join 本身
			_, _ = s.notify.NotifyUsers(ctx, admins, "join_request",
				fmt.Sprintf("/c/%s/members/pending", community.Slug),
				"New join request",
				fmt.Sprintf("A user requested to join %s", community.Name))
		}
	}
	return status, nil
}

// Leave removes the caller's membership. Owners cannot leave their own
// community; they deactivate it instead.
func (s *CommunityService) Leave(userID uint64, community *model.Community) *pkg.AppError {
	m, found, err := s.members.Get(community.ID, userID)
	if err != nil {
		return pkg.Wrap(pkg.CodeInternal, "lookup failed", err)
	}
	if !found {
		// 幂等
		return nil
	}
	if m.Role == model.MemberRoleOwner {
		return pkg.E(pkg.CodeForbidden, "owner cannot leave")
	}
	if _, err := s.members.Leave(community.ID, userID); err != nil {
		return pkg.Wrap(pkg.CodeInternal, "leave failed", err)
	}
	return nil
}

func (s *CommunityService) List(page, size int) ([]model.Community, *pkg.AppError) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	list, err := s.repo.List((page-1)*size, size)
	if err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "list failed", err)
	}
	return list, nil
}

// Deactivate 软删除（owner only，权限由调用方把关）
func (s *CommunityService) Deactivate(communityID uint64) *pkg.AppError {
	if err := s.repo.Deactivate(communityID); err != nil {
		return pkg.Wrap(pkg.CodeInternal, "deactivate failed", err)
	}
	return nil
}
