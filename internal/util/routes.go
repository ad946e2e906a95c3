package util

import (
	"fmt"
	"net/url"
)

// 跳转地址统一走这里构造，避免手写路径拼错

func TeacherHomePath() string    { return "/teachers/" }
func ClassListPath() string      { return "/teachers/classes/" }
func ClassCreatePath() string    { return "/teachers/classes/create/" }
func TopicListPath() string      { return "/teachers/topics/" }
func AssignmentListPath() string { return "/teachers/assignments/" }
func QuizListPath() string       { return "/teachers/quizzes/" }
func QuizUploadPath() string     { return "/teachers/upload-quiz" }
func FeedbackPath() string       { return "/teachers/feedback/" }

func ClassPath(classID uint) string {
	return fmt.Sprintf("/teachers/class/%d/", classID)
}

func TopicPath(topicID uint) string {
	return fmt.Sprintf("/teachers/objectives/%d/", topicID)
}

func AssignmentPath(assignmentID uint) string {
	return fmt.Sprintf("/teachers/assignments/%d/", assignmentID)
}

func QuizPath(quizID uint) string {
	return fmt.Sprintf("/teachers/quizzes/%d/", quizID)
}

// WithMessage 把确认信息挂到跳转地址上（flash 的无状态替代）
func WithMessage(path, msg string) string {
	return path + "?msg=" + url.QueryEscape(msg)
}

// WithError 同上，错误提示
func WithError(path, msg string) string {
	return path + "?error=" + url.QueryEscape(msg)
}
