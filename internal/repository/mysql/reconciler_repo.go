package mysql

import (
	"context"

	"Hive_Community/internal/model"

	"gorm.io/gorm"
)

type MemberCountReconcilerRepo struct {
	DB *gorm.DB
}

// Pair 对账消息结构体
type Pair struct {
	ID          uint64
	MemberCount int64
}

// ReconcileList walks communities in id order, one batch at a time.
func (r *MemberCountReconcilerRepo) ReconcileList(ctx context.Context, batchSize int, lastID uint64) ([]Pair, uint64, error) {
	var list []Pair
	if err := r.DB.WithContext(ctx).Model(&model.Community{}).
		Select("id", "member_count").
		Where("id > ?", lastID).
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, lastID, err
	}
	if len(list) == 0 {
		return nil, lastID, nil
	}
	return list, list[len(list)-1].ID, nil
}

// RealMemberCount 真实活跃成员数量查询
func (r *MemberCountReconcilerRepo) RealMemberCount(ctx context.Context, communityID uint64) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&model.Membership{}).
		Where("community_id = ? AND status = ?", communityID, model.MemberStatusActive).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// FixMemberCount 修正计数
func (r *MemberCountReconcilerRepo) FixMemberCount(ctx context.Context, communityID uint64, real int64) error {
	return r.DB.WithContext(ctx).Model(&model.Community{}).Where("id = ?", communityID).
		UpdateColumn("member_count", real).Error
}
