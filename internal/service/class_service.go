package service

import (
	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/internal/repository"
)

type ClassService struct {
	ClassRepo      *repository.ClassRepository
	TopicRepo      *repository.TopicRepository
	AssignmentRepo *repository.AssignmentRepository
	StudentRepo    *repository.StudentRepository
	GradeRepo      *repository.GradeRepository
}

func NewClassService(
	classRepo *repository.ClassRepository,
	topicRepo *repository.TopicRepository,
	assignmentRepo *repository.AssignmentRepository,
	studentRepo *repository.StudentRepository,
	gradeRepo *repository.GradeRepository,
) *ClassService {
	return &ClassService{
		ClassRepo:      classRepo,
		TopicRepo:      topicRepo,
		AssignmentRepo: assignmentRepo,
		StudentRepo:    studentRepo,
		GradeRepo:      gradeRepo,
	}
}

// ClassDetail 班级详情页一次取齐：主题、作业、学生、成绩
type ClassDetail struct {
	Class       model.Class        `json:"class"`
	Topics      []model.Topic      `json:"topics"`
	Assignments []model.Assignment `json:"assignments"`
	Students    []model.Student    `json:"students"`
	Grades      []model.Grade      `json:"grades"`
}

func (s *ClassService) ListForTeacher(teacherID uint) ([]model.Class, error) {
	return s.ClassRepo.ListByTeacher(teacherID)
}

// Create 建班后按主键回读确认，避免并发下 "最后一行" 串号
func (s *ClassService) Create(teacherID uint, name string) (*model.Class, error) {
	class := &model.Class{
		Name:      name,
		TeacherID: teacherID,
	}
	if err := s.ClassRepo.Create(class); err != nil {
		return nil, err
	}
	return s.ClassRepo.FindByID(class.ID)
}

func (s *ClassService) Detail(teacherID, classID uint) (*ClassDetail, error) {
	class, err := authorizeClass(s.ClassRepo, teacherID, classID)
	if err != nil {
		return nil, err
	}

	topics, err := s.TopicRepo.ListByClass(classID)
	if err != nil {
		return nil, err
	}
	assignments, err := s.AssignmentRepo.ListByClass(classID)
	if err != nil {
		return nil, err
	}
	students, err := s.StudentRepo.ListByClass(classID)
	if err != nil {
		return nil, err
	}
	grades, err := s.GradeRepo.ListByClass(classID)
	if err != nil {
		return nil, err
	}

	return &ClassDetail{
		Class:       *class,
		Topics:      topics,
		Assignments: assignments,
		Students:    students,
		Grades:      grades,
	}, nil
}
