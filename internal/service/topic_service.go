package service

import (
	"errors"

	"Hive_Community/internal/model"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/repository/mysql"
)

type TopicService struct {
	repo *mysql.TopicRepository
}

func NewTopicService() *TopicService {
	return &TopicService{repo: &mysql.TopicRepository{DB: mysql.DB}}
}

// Create inserts a topic; a name already used in the same community yields
// the stable UNIQUE_TOPIC_NAME conflict and no second row.
func (s *TopicService) Create(communityID uint64, name string, writePolicy int) (*model.Topic, *pkg.AppError) {
	if name == "" {
		return nil, pkg.E(pkg.CodeInvalidParams, "topic name required")
	}
	if writePolicy != model.TopicWriteMembers && writePolicy != model.TopicWriteAdmins {
		return nil, pkg.E(pkg.CodeInvalidParams, "invalid write policy")
	}

	topic := &model.Topic{
		CommunityID: communityID,
		Name:        name,
		WritePolicy: writePolicy,
	}
	if err := s.repo.Create(topic); err != nil {
		if errors.Is(err, mysql.ErrTopicNameTaken) {
			return nil, pkg.E(pkg.CodeUniqueTopicName, "topic name already exists in this community")
		}
		return nil, pkg.Wrap(pkg.CodeInternal, "create topic failed", err)
	}
	return topic, nil
}

func (s *TopicService) List(communityID uint64) ([]model.Topic, *pkg.AppError) {
	list, err := s.repo.ListByCommunity(communityID)
	if err != nil {
		return nil, pkg.Wrap(pkg.CodeInternal, "list failed", err)
	}
	return list, nil
}
