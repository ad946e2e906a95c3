package service

import (
	"errors"
	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/internal/repository"
	"teacher_portal_backend/internal/util"

	"gorm.io/gorm"
)

// 所有父级引用在写入前都要走一遍归属校验：
// 记录不存在 → ErrNotFound；属于别的教师 → ErrForbidden。

func authorizeClass(classes *repository.ClassRepository, teacherID, classID uint) (*model.Class, error) {
	class, err := classes.FindByID(classID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if class.TeacherID != teacherID {
		return nil, util.ErrForbidden
	}
	return class, nil
}

func authorizeTopic(topics *repository.TopicRepository, classes *repository.ClassRepository, teacherID, topicID uint) (*model.Topic, error) {
	topic, err := topics.FindByID(topicID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if _, err := authorizeClass(classes, teacherID, topic.ClassID); err != nil {
		// 班级存在但属于别人 → Forbidden；班级悬空引用属于数据损坏，原样上抛
		return nil, err
	}
	return topic, nil
}

func authorizeQuiz(quizzes *repository.QuizRepository, topics *repository.TopicRepository, classes *repository.ClassRepository, teacherID, quizID uint) (*model.Quiz, error) {
	quiz, err := quizzes.FindByID(quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if _, err := authorizeTopic(topics, classes, teacherID, quiz.TopicID); err != nil {
		return nil, err
	}
	return quiz, nil
}

func authorizeAssignment(assignments *repository.AssignmentRepository, topics *repository.TopicRepository, classes *repository.ClassRepository, teacherID, assignmentID uint) (*model.Assignment, error) {
	assignment, err := assignments.FindByID(assignmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if _, err := authorizeTopic(topics, classes, teacherID, assignment.TopicID); err != nil {
		return nil, err
	}
	return assignment, nil
}
