package service

import (
	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/internal/repository"
	"teacher_portal_backend/internal/util"
	"time"
)

// 作业截止日期按日历日提交
const dueDateLayout = "2006-01-02"

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	TopicRepo      *repository.TopicRepository
	ClassRepo      *repository.ClassRepository
}

func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	topicRepo *repository.TopicRepository,
	classRepo *repository.ClassRepository,
) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		TopicRepo:      topicRepo,
		ClassRepo:      classRepo,
	}
}

// AssignmentOverview 作业列表页：主题下拉框 + 作业
type AssignmentOverview struct {
	Topics      []model.Topic      `json:"topics"`
	Assignments []model.Assignment `json:"assignments"`
}

func (s *AssignmentService) Overview(teacherID uint) (*AssignmentOverview, error) {
	topics, err := s.TopicRepo.ListByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	assignments, err := s.AssignmentRepo.ListByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	return &AssignmentOverview{Topics: topics, Assignments: assignments}, nil
}

func (s *AssignmentService) ListForTeacher(teacherID uint) ([]model.Assignment, error) {
	return s.AssignmentRepo.ListByTeacher(teacherID)
}

func (s *AssignmentService) Create(teacherID, topicID uint, name, description, dueDate string) (*model.Assignment, error) {
	if _, err := authorizeTopic(s.TopicRepo, s.ClassRepo, teacherID, topicID); err != nil {
		return nil, err
	}

	due, err := time.Parse(dueDateLayout, dueDate)
	if err != nil {
		return nil, util.NewValidationError("invalid due date %q, expected yyyy-mm-dd", dueDate)
	}

	assignment := &model.Assignment{
		Name:        name,
		Description: description,
		DueDate:     due,
		TopicID:     topicID,
	}
	if err := s.AssignmentRepo.Create(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) Detail(teacherID, assignmentID uint) (*model.Assignment, error) {
	return authorizeAssignment(s.AssignmentRepo, s.TopicRepo, s.ClassRepo, teacherID, assignmentID)
}
