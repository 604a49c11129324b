package mysql

import (
	"errors"
	"time"

	"Hive_Community/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepository struct {
	DB *gorm.DB
}

// Get returns the single membership row for (community, user), if any.
// "No row" is (nil, false, nil) — it is not an error.
func (r *MembershipRepository) Get(communityID, userID uint64) (*model.Membership, bool, error) {
	var m model.Membership
	err := r.DB.Where("community_id = ? AND user_id = ?", communityID, userID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &m, true, nil
}

// Join inserts a row with the given status; idempotent on the
// (community_id, user_id) unique key. Reports whether a row was inserted and
// bumps the member count only for a newly inserted active row.
func (r *MembershipRepository) Join(communityID, userID uint64, role int, status int8) (bool, error) {
	var inserted bool
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		m := &model.Membership{
			CommunityID: communityID,
			UserID:      userID,
			Role:        role,
			Status:      status,
			JoinedAt:    time.Now(),
		}
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "community_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		inserted = true
		if status == model.MemberStatusActive {
			return adjustMemberCount(tx, communityID, +1)
		}
		return nil
	})
	return inserted, err
}

// Leave deletes the row. Reports whether a row was removed; the caller is
// responsible for refusing owners.
func (r *MembershipRepository) Leave(communityID, userID uint64) (bool, error) {
	var removed bool
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var m model.Membership
		err := tx.Where("community_id = ? AND user_id = ?", communityID, userID).First(&m).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		res := tx.Where("id = ?", m.ID).Delete(&model.Membership{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true
		if m.Status == model.MemberStatusActive {
			return adjustMemberCount(tx, communityID, -1)
		}
		return nil
	})
	return removed, err
}

// Approve flips PENDING to ACTIVE. The status guard in the WHERE clause makes
// concurrent approve/decline of the same row resolve to a single winner:
// the loser sees changed=false.
func (r *MembershipRepository) Approve(communityID, userID uint64) (bool, error) {
	var changed bool
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Membership{}).
			Where("community_id = ? AND user_id = ? AND status = ?", communityID, userID, model.MemberStatusPending).
			Updates(map[string]any{"status": model.MemberStatusActive, "joined_at": time.Now()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		changed = true
		return adjustMemberCount(tx, communityID, +1)
	})
	return changed, err
}

// Decline removes a PENDING row; same guarded-transition semantics as Approve.
func (r *MembershipRepository) Decline(communityID, userID uint64) (bool, error) {
	res := r.DB.Where("community_id = ? AND user_id = ? AND status = ?", communityID, userID, model.MemberStatusPending).
		Delete(&model.Membership{})
	return res.RowsAffected > 0, res.Error
}

// Ban flips ACTIVE to BANNED and releases the member-count slot.
func (r *MembershipRepository) Ban(communityID, userID uint64) (bool, error) {
	var changed bool
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Membership{}).
			Where("community_id = ? AND user_id = ? AND status = ?", communityID, userID, model.MemberStatusActive).
			Update("status", model.MemberStatusBanned)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		changed = true
		return adjustMemberCount(tx, communityID, -1)
	})
	return changed, err
}

func (r *MembershipRepository) ListPending(communityID uint64, offset, limit int) ([]model.Membership, error) {
	var list []model.Membership
	err := r.DB.Where("community_id = ? AND status = ?", communityID, model.MemberStatusPending).
		Order("created_at ASC").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

// AdminIDs 查询管理员id列表（含 owner）
func (r *MembershipRepository) AdminIDs(communityID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.DB.Model(&model.Membership{}).
		Where("community_id = ? AND role >= ? AND status = ?", communityID, model.MemberRoleAdmin, model.MemberStatusActive).
		Pluck("user_id", &ids).Error
	return ids, err
}
