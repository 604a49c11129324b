package mysql

import (
	"errors"
	"time"

	"Hive_Community/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommunityRepository struct {
	DB *gorm.DB
}

// CreateWithOwner inserts the community and the creator's owner membership in
// one transaction. MemberCount starts at 1 for the owner.
func (r *CommunityRepository) CreateWithOwner(c *model.Community) error {
	c.MemberCount = 1
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		// 幂等插入 owner 成员
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "community_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&model.Membership{
			CommunityID: c.ID,
			UserID:      c.CreatorID,
			Role:        model.MemberRoleOwner,
			Status:      model.MemberStatusActive,
			JoinedAt:    time.Now(),
		}).Error
	})
}

// FindBySlug returns the community only while it is active. Absence and the
// soft-deleted state are the same "not found" outcome, not an error.
func (r *CommunityRepository) FindBySlug(slug string) (*model.Community, bool, error) {
	var community model.Community
	err := r.DB.Where("slug = ? AND active = ?", slug, true).First(&community).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &community, true, nil
}

func (r *CommunityRepository) FindByID(id uint64) (*model.Community, bool, error) {
	var community model.Community
	err := r.DB.Where("id = ? AND active = ?", id, true).First(&community).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &community, true, nil
}

func (r *CommunityRepository) List(offset, limit int) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Where("active = ?", true).Order("id desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

// Deactivate 软删除，幂等
func (r *CommunityRepository) Deactivate(id uint64) error {
	return r.DB.Model(&model.Community{}).Where("id = ?", id).Update("active", false).Error
}

// adjustMemberCount bumps the denormalized counter inside the caller's
// transaction, clamped at zero. Drift is fixed by the reconciler.
func adjustMemberCount(tx *gorm.DB, communityID uint64, delta int64) error {
	return tx.Model(&model.Community{}).
		Where("id = ?", communityID).
		UpdateColumn("member_count",
			gorm.Expr("CASE WHEN member_count + ? < 0 THEN 0 ELSE member_count + ? END", delta, delta)).Error
}
