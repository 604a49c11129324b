package service

import (
	"Hive_Community/internal/model"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"
)

var galleryPlatforms = map[string]bool{
	"youtube": true,
	"vimeo":   true,
	"loom":    true,
}

type GalleryService struct {
	repo *mysql.GalleryRepository
}

func NewGalleryService() *GalleryService {
	return &GalleryService{repo: &mysql.GalleryRepository{DB: mysql.DB}}
}

func (s *GalleryService) Add(communityID, userID uint64, platform, url string) (*model.GalleryMedia, *pkg.AppError) {
	if !galleryPlatforms[platform] {
		return nil, pkg.E(pkg.CodeInvalidParams, "unsupported platform")
	}
	if url == "" {
		return nil, pkg.E(pkg.CodeInvalidParams, "url required")
	}
	media := &model.GalleryMedia{
		CommunityID: communityID,
		Platform:    platform,
		URL:         url,
		AddedBy:     userID,
	}
	if err := s.repo.Add(media); err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "add media failed", err)
	}
	return media, nil
}

func (s *GalleryService) List(communityID uint64) ([]model.GalleryMedia, *pkg.AppError) {
	list, err := s.repo.ListByCommunity(communityID)
	if err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "list failed", err)
	}
	return list, nil
}
