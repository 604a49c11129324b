package service

import (
	"errors"

	"Hive_Community/internal/model"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"
)

type ClassroomService struct {
	repo *mysql.ClassroomRepository
}

func NewClassroomService() *ClassroomService {
	return &ClassroomService{repo: &mysql.ClassroomRepository{DB: mysql.DB}}
}

func (s *ClassroomService) Create(communityID uint64, name, desc string) (*model.Classroom, *pkg.AppError) {
	if name == "" {
		return nil, pkg.E(pkg.CodeInvalidParams, "classroom name required")
	}
	room := &model.Classroom{
		CommunityID: communityID,
		Name:        name,
		Description: desc,
	}
	if err := s.repo.Create(room); err != nil {
		if errors.Is(err, mysql.ErrClassroomNameTaken) {
			return nil, pkg.E(pkg.CodeConflict, "classroom name already exists")
		}
		return nil, pkg.Wrap(pkg.CodeInternal, "create classroom failed", err)
	}
	return room, nil
}

func (s *ClassroomService) List(communityID uint64) ([]model.Classroom, *pkg.AppError) {
	list, err := s.repo.ListByCommunity(communityID)
	if err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "list failed", err)
	}
	return list, nil
}
