package service

import (
	"Hive_Community/internal/model"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"
)

type PostService struct {
	repo   *mysql.PostRepository
	topics *mysql.TopicRepository
}

func NewPostService() *PostService {
	return &PostService{
		repo:   &mysql.PostRepository{DB: mysql.DB},
		topics: &mysql.TopicRepository{DB: mysql.DB},
	}
}

// Create writes a post. Membership gating happens upstream via the access
// context; admin-only topics additionally need isAdmin.
func (s *PostService) Create(userID, communityID, topicID uint64, title, content string, isAdmin bool) (*model.Post, *pkg.AppError) {
	if title == "" {
		return nil, pkg.E(pkg.CodeInvalidParams, "title required")
	}

	if topicID != 0 {
		topic, found, err := s.topics.FindByID(topicID)
		if err != nil {
			return nil, pkg.Wrap(pkg.CodeInternal, "topic lookup failed", err)
		}
		if !found || topic.CommunityID != communityID {
			return nil, pkg.E(pkg.CodeNotFound, "topic not found")
		}
		if topic.WritePolicy == model.TopicWriteAdmins && !isAdmin {
			return nil, pkg.E(pkg.CodeForbidden, "topic is admin only")
		}
	}

	post := &model.Post{
		CommunityID: communityID,
		TopicID:     topicID,
		AuthorID:    userID,
		Title:       title,
		Content:     content,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "create post failed", err)
	}
	return post, nil
}

// ListCursor 游标分页，cursor=0 表示第一页
func (s *PostService) ListCursor(communityID, cursor uint64, size int) ([]model.Post, uint64, *pkg.AppError) {
	list, next, err := s.repo.ListByCommunityCursor(communityID, cursor, size)
	if err != nil {
		return nil, 0, pkg.Wrap(pkg.CodeInternal, "list failed", err)
	}
	return list, next, nil
}

func (s *PostService) List(communityID uint64, page, size int) ([]model.Post, *pkg.AppError) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	list, err := s.repo.ListByCommunity(communityID, (page-1)*size, size)
	if err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "list failed", err)
	}
	return list, nil
}

// Delete 幂等软删除：作者或社区管理员可删，已删除视为成功
func (s *PostService) Delete(userID, communityID, postID uint64, isAdmin bool) *pkg.AppError {
	post, found, err := s.repo.FindByID(postID)
	if err != nil {
		return pkg.Wrap(pkg.CodeInternal, "lookup failed", err)
	}
	if !found {
		return nil
	}
	if post.CommunityID != communityID {
		return pkg.E(pkg.CodeNotFound, "post not found")
	}
	if post.AuthorID != userID && !isAdmin {
		return pkg.E(pkg.CodeForbidden, "no permission")
	}
	if _, err := s.repo.SoftDelete(postID); err != nil {
		return pkg.Wrap(pkg.CodeInternal, "delete failed", err)
	}
	return nil
}
