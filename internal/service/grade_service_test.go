package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"

	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/internal/util"
)

type gradeFixture struct {
	class      *model.Class
	assignment *model.Assignment
	student    *model.Student
}

func seedGradeFixture(t *testing.T, db *gorm.DB, teacherID uint) gradeFixture {
	t.Helper()
	class := &model.Class{Name: "Math", TeacherID: teacherID}
	require.NoError(t, db.Create(class).Error)
	topic := &model.Topic{Name: "Algebra", ClassID: class.ID}
	require.NoError(t, db.Create(topic).Error)
	assignment := &model.Assignment{Name: "Homework 1", TopicID: topic.ID}
	require.NoError(t, db.Create(assignment).Error)
	student := &model.Student{Name: "Grace"}
	require.NoError(t, db.Create(student).Error)
	require.NoError(t, db.Create(&model.Enrollment{StudentID: student.ID, ClassID: class.ID}).Error)
	return gradeFixture{class: class, assignment: assignment, student: student}
}

func TestRecordGrade(t *testing.T) {
	db := newTestDB(t)
	svc := newGradeService(db)
	fx := seedGradeFixture(t, db, 1)

	grade, err := svc.Record(1, fx.class.ID, fx.student.ID, fx.assignment.ID, 87.5)
	require.NoError(t, err)
	assert.NotZero(t, grade.ID)

	var stored model.Grade
	require.NoError(t, db.First(&stored, grade.ID).Error)
	assert.Equal(t, fx.student.ID, stored.StudentID)
	assert.Equal(t, fx.assignment.ID, stored.AssignmentID)
	assert.EqualValues(t, 87.5, stored.Score)
}

// 同一 (学生, 作业) 重复打分是追加，不是覆盖
func TestRecordGradeDuplicateAppends(t *testing.T) {
	db := newTestDB(t)
	svc := newGradeService(db)
	fx := seedGradeFixture(t, db, 1)

	_, err := svc.Record(1, fx.class.ID, fx.student.ID, fx.assignment.ID, 60)
	require.NoError(t, err)
	_, err = svc.Record(1, fx.class.ID, fx.student.ID, fx.assignment.ID, 80)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Grade{}).
		Where("student_id = ? AND assignment_id = ?", fx.student.ID, fx.assignment.ID).
		Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestRecordGradeUnenrolledStudent(t *testing.T) {
	db := newTestDB(t)
	svc := newGradeService(db)
	fx := seedGradeFixture(t, db, 1)

	outsider := &model.Student{Name: "Linus"}
	require.NoError(t, db.Create(outsider).Error)

	_, err := svc.Record(1, fx.class.ID, outsider.ID, fx.assignment.ID, 50)
	assert.ErrorIs(t, err, util.ErrForbidden)
}

func TestRecordGradeAssignmentFromOtherClass(t *testing.T) {
	db := newTestDB(t)
	svc := newGradeService(db)
	fx := seedGradeFixture(t, db, 1)
	other := seedGradeFixture(t, db, 1)

	_, err := svc.Record(1, fx.class.ID, fx.student.ID, other.assignment.ID, 70)
	assert.ErrorIs(t, err, util.ErrForbidden)
}

func TestRecordGradeMissingAssignment(t *testing.T) {
	db := newTestDB(t)
	svc := newGradeService(db)
	fx := seedGradeFixture(t, db, 1)

	_, err := svc.Record(1, fx.class.ID, fx.student.ID, fx.assignment.ID+100, 70)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestRecordGradeForeignClass(t *testing.T) {
	db := newTestDB(t)
	svc := newGradeService(db)
	fx := seedGradeFixture(t, db, 1)

	_, err := svc.Record(2, fx.class.ID, fx.student.ID, fx.assignment.ID, 70)
	assert.ErrorIs(t, err, util.ErrForbidden)
}
