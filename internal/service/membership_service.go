package service

import (
	"context"
	"fmt"
	"log"

	"Hive_Community/internal/model"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"
)

type MembershipService struct {
	members  *mysql.MembershipRepository
	users    *mysql.UserRepository
	notify   *NotificationService
	emailCfg pkg.SMTPConfig
}

func NewMembershipService(notify *NotificationService, emailCfg pkg.SMTPConfig) *MembershipService {
	return &MembershipService{
		members:  &mysql.MembershipRepository{DB: mysql.DB},
		users:    &mysql.UserRepository{DB: mysql.DB},
		notify:   notify,
		emailCfg: emailCfg,
	}
}

func (s *MembershipService) Pending(communityID uint64, page, size int) ([]model.Membership, *pkg.AppError) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 50
	}
	list, err := s.members.ListPending(communityID, (page-1)*size, size)
	if err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "list failed", err)
	}
	return list, nil
}

// Approve flips a pending request to active. The notification and the email
// are follow-ups: their failure is logged and never reported as an approval
// failure, since the membership row is already committed.
func (s *MembershipService) Approve(ctx context.Context, community *model.Community, userID uint64) *pkg.AppError {
	changed, err := s.members.Approve(community.ID, userID)
	if err != nil {
		return pkg.Wrap(pkg.CodeInternal, "approve failed", err)
	}
	if !changed {
		// 并发审核时只有一个赢家
		return pkg.E(pkg.CodeConflict, "no pending request")
	}

	if _, nerr := s.notify.NotifyUsers(ctx, []uint64{userID}, "join_approved",
		fmt.Sprintf("/c/%s", community.Slug),
		fmt.Sprintf("Welcome to %s", community.Name), ""); nerr != nil {
		log.Printf("approve follow-up notify err: %v", nerr)
	}
	s.sendDecisionEmail(userID, community.Name, true)
	return nil
}

func (s *MembershipService) Decline(community *model.Community, userID uint64) *pkg.AppError {
	changed, err := s.members.Decline(community.ID, userID)
	if err != nil {
		return pkg.Wrap(pkg.CodeInternal, "decline failed", err)
	}
	if !changed {
		return pkg.E(pkg.CodeConflict, "no pending request")
	}
	s.sendDecisionEmail(userID, community.Name, false)
	return nil
}

// Ban flips an active member to banned. Owners and admins cannot be banned
// through this path.
func (s *MembershipService) Ban(community *model.Community, userID uint64) *pkg.AppError {
	m, found, err := s.members.Get(community.ID, userID)
	if err != nil {
		return pkg.Wrap(pkg.CodeInternal, "lookup failed", err)
	}
	if !found {
		return pkg.E(pkg.CodeNotFound, "not a member")
	}
	if m.Role >= model.MemberRoleAdmin {
		return pkg.E(pkg.CodeForbidden, "cannot ban an admin")
	}
	changed, err := s.members.Ban(community.ID, userID)
	if err != nil {
		return pkg.Wrap(pkg.CodeInternal, "ban failed", err)
	}
	if !changed {
		return pkg.E(pkg.CodeConflict, "member not active")
	}
	return nil
}

// 审核结果邮件，尽力而为
func (s *MembershipService) sendDecisionEmail(userID uint64, communityName string, approved bool) {
	user, found, err := s.users.FindByID(userID)
	if err != nil || !found {
		return
	}
	subject := fmt.Sprintf("Your request to join %s", communityName)
	html := pkg.MembershipDecisionHTML(communityName, approved)
	if err := pkg.SendEmail(s.emailCfg, user.Email, subject, html); err != nil {
		log.Printf("decision email err: %v", err)
	}
}
