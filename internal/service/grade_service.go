package service

import (
	"errors"
	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/internal/repository"
	"teacher_portal_backend/internal/util"

	"gorm.io/gorm"
)

type GradeService struct {
	GradeRepo      *repository.GradeRepository
	StudentRepo    *repository.StudentRepository
	AssignmentRepo *repository.AssignmentRepository
	TopicRepo      *repository.TopicRepository
	ClassRepo      *repository.ClassRepository
}

func NewGradeService(
	gradeRepo *repository.GradeRepository,
	studentRepo *repository.StudentRepository,
	assignmentRepo *repository.AssignmentRepository,
	topicRepo *repository.TopicRepository,
	classRepo *repository.ClassRepository,
) *GradeService {
	return &GradeService{
		GradeRepo:      gradeRepo,
		StudentRepo:    studentRepo,
		AssignmentRepo: assignmentRepo,
		TopicRepo:      topicRepo,
		ClassRepo:      classRepo,
	}
}

// Record 录入一条成绩。学生必须在该班级注册，作业必须挂在该班级的主题下，
// 否则 Forbidden。重复的 (student, assignment) 会追加第二条记录。
func (s *GradeService) Record(teacherID, classID, studentID, assignmentID uint, score float64) (*model.Grade, error) {
	if _, err := authorizeClass(s.ClassRepo, teacherID, classID); err != nil {
		return nil, err
	}

	enrolled, err := s.StudentRepo.IsEnrolled(studentID, classID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, util.ErrForbidden
	}

	assignment, err := s.AssignmentRepo.FindByID(assignmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	topic, err := s.TopicRepo.FindByID(assignment.TopicID)
	if err != nil {
		return nil, err
	}
	if topic.ClassID != classID {
		return nil, util.ErrForbidden
	}

	grade := &model.Grade{
		StudentID:    studentID,
		AssignmentID: assignmentID,
		Score:        score,
	}
	if err := s.GradeRepo.Create(grade); err != nil {
		return nil, err
	}
	return grade, nil
}
