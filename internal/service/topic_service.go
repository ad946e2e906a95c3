package service

import (
	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/internal/repository"
)

type TopicService struct {
	TopicRepo      *repository.TopicRepository
	ClassRepo      *repository.ClassRepository
	AssignmentRepo *repository.AssignmentRepository
	QuizRepo       *repository.QuizRepository
}

func NewTopicService(
	topicRepo *repository.TopicRepository,
	classRepo *repository.ClassRepository,
	assignmentRepo *repository.AssignmentRepository,
	quizRepo *repository.QuizRepository,
) *TopicService {
	return &TopicService{
		TopicRepo:      topicRepo,
		ClassRepo:      classRepo,
		AssignmentRepo: assignmentRepo,
		QuizRepo:       quizRepo,
	}
}

// TopicOverview 主题列表页同时要展示班级下拉框
type TopicOverview struct {
	Classes []model.Class `json:"classes"`
	Topics  []model.Topic `json:"topics"`
}

// TopicDetail 主题详情：名下的作业与测验
type TopicDetail struct {
	Topic       model.Topic        `json:"topic"`
	Assignments []model.Assignment `json:"assignments"`
	Quizzes     []model.Quiz       `json:"quizzes"`
}

func (s *TopicService) Overview(teacherID uint) (*TopicOverview, error) {
	classes, err := s.ClassRepo.ListByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	topics, err := s.TopicRepo.ListByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	return &TopicOverview{Classes: classes, Topics: topics}, nil
}

func (s *TopicService) Create(teacherID, classID uint, name string) (*model.Topic, error) {
	if _, err := authorizeClass(s.ClassRepo, teacherID, classID); err != nil {
		return nil, err
	}

	topic := &model.Topic{
		Name:    name,
		ClassID: classID,
	}
	if err := s.TopicRepo.Create(topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *TopicService) Detail(teacherID, topicID uint) (*TopicDetail, error) {
	topic, err := authorizeTopic(s.TopicRepo, s.ClassRepo, teacherID, topicID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.AssignmentRepo.ListByTopic(topicID)
	if err != nil {
		return nil, err
	}
	quizzes, err := s.QuizRepo.ListByTopic(topicID)
	if err != nil {
		return nil, err
	}

	return &TopicDetail{
		Topic:       *topic,
		Assignments: assignments,
		Quizzes:     quizzes,
	}, nil
}
