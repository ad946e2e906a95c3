package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/internal/util"
)

// 两个教师交替建班，每个人拿回的必须是自己那条记录
func TestCreateReturnsOwnClass(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)

	seen := map[uint]bool{}
	for i := 0; i < 5; i++ {
		for teacherID := uint(1); teacherID <= 2; teacherID++ {
			name := fmt.Sprintf("Class %d-%d", teacherID, i)
			class, err := svc.Create(teacherID, name)
			require.NoError(t, err)
			assert.Equal(t, name, class.Name)
			assert.Equal(t, teacherID, class.TeacherID)
			assert.False(t, seen[class.ID], "id %d returned twice", class.ID)
			seen[class.ID] = true
		}
	}
}

func TestListForTeacherIsScoped(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)

	_, err := svc.Create(1, "Mine")
	require.NoError(t, err)
	_, err = svc.Create(2, "Theirs")
	require.NoError(t, err)

	classes, err := svc.ListForTeacher(1)
	require.NoError(t, err)
	require.Len(t, classes, 1)
	assert.Equal(t, "Mine", classes[0].Name)
}

func TestClassDetailAggregates(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)

	class, err := svc.Create(1, "Science")
	require.NoError(t, err)

	topic := &model.Topic{Name: "Physics", ClassID: class.ID}
	require.NoError(t, db.Create(topic).Error)
	assignment := &model.Assignment{Name: "Lab report", TopicID: topic.ID}
	require.NoError(t, db.Create(assignment).Error)

	student := &model.Student{Name: "Ada"}
	require.NoError(t, db.Create(student).Error)
	require.NoError(t, db.Create(&model.Enrollment{StudentID: student.ID, ClassID: class.ID}).Error)
	require.NoError(t, db.Create(&model.Grade{StudentID: student.ID, AssignmentID: assignment.ID, Score: 95}).Error)

	detail, err := svc.Detail(1, class.ID)
	require.NoError(t, err)

	assert.Equal(t, class.ID, detail.Class.ID)
	require.Len(t, detail.Topics, 1)
	require.Len(t, detail.Assignments, 1)
	require.Len(t, detail.Students, 1)
	require.Len(t, detail.Grades, 1)
	assert.Equal(t, "Ada", detail.Students[0].Name)
	assert.EqualValues(t, 95, detail.Grades[0].Score)
}

func TestClassDetailOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newClassService(db)

	class, err := svc.Create(1, "History")
	require.NoError(t, err)

	_, err = svc.Detail(2, class.ID)
	assert.ErrorIs(t, err, util.ErrForbidden)

	_, err = svc.Detail(1, class.ID+100)
	assert.ErrorIs(t, err, util.ErrNotFound)
}
