package service

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/internal/repository"
	"teacher_portal_backend/pkg/database"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:portal_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newQuizService(db *gorm.DB) *QuizService {
	return NewQuizService(
		repository.NewQuizRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewTopicRepository(db),
		repository.NewClassRepository(db),
		nil,
		nil,
	)
}

func newClassService(db *gorm.DB) *ClassService {
	return NewClassService(
		repository.NewClassRepository(db),
		repository.NewTopicRepository(db),
		repository.NewAssignmentRepository(db),
		repository.NewStudentRepository(db),
		repository.NewGradeRepository(db),
	)
}

func newGradeService(db *gorm.DB) *GradeService {
	return NewGradeService(
		repository.NewGradeRepository(db),
		repository.NewStudentRepository(db),
		repository.NewAssignmentRepository(db),
		repository.NewTopicRepository(db),
		repository.NewClassRepository(db),
	)
}

// seedQuiz 建好 班级→主题→测验 链，归属给 teacherID
func seedQuiz(t *testing.T, db *gorm.DB, teacherID uint) *model.Quiz {
	t.Helper()
	class := &model.Class{Name: "Math", TeacherID: teacherID}
	require.NoError(t, db.Create(class).Error)
	topic := &model.Topic{Name: "Algebra", ClassID: class.ID}
	require.NoError(t, db.Create(topic).Error)
	quiz := &model.Quiz{Name: "Quiz 1", TopicID: topic.ID}
	require.NoError(t, db.Create(quiz).Error)
	return quiz
}

// csvUpload 构造一个真实的 multipart 文件头，走与 gin 相同的解析路径
func csvUpload(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/teachers/upload-quiz", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	_, fh, err := req.FormFile("file")
	require.NoError(t, err)
	return fh
}
