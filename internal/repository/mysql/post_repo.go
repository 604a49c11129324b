package mysql

import (
	"errors"

	"Hive_Community/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, bool, error) {
	var post model.Post
	err := r.DB.First(&post, "id = ? AND status = 0", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &post, true, nil
}

// ListByCommunity 基础分页查询
func (r *PostRepository) ListByCommunity(communityID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Where("community_id = ? AND status = 0", communityID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

// ListByCommunityCursor pages by id cursor, newest first. cursor=0 is the
// first page; limit+1 rows are fetched to know whether a next page exists.
func (r *PostRepository) ListByCommunityCursor(communityID, cursor uint64, limit int) ([]model.Post, uint64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	q := r.DB.Where("community_id = ? AND status = 0", communityID)
	if cursor > 0 {
		q = q.Where("id < ?", cursor)
	}
	var rows []model.Post
	if err := q.Order("id DESC").Limit(limit + 1).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	var next uint64
	if len(rows) > limit {
		next = rows[limit-1].ID
		rows = rows[:limit]
	}
	return rows, next, nil
}

// SoftDelete 软删除，幂等
func (r *PostRepository) SoftDelete(id uint64) (bool, error) {
	res := r.DB.Model(&model.Post{}).
		Where("id = ? AND status = 0", id).
		Update("status", 1)
	return res.RowsAffected > 0, res.Error
}
