package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/internal/repository"
	"teacher_portal_backend/internal/util"
)

func newAssignmentService(db *gorm.DB) *AssignmentService {
	return NewAssignmentService(
		repository.NewAssignmentRepository(db),
		repository.NewTopicRepository(db),
		repository.NewClassRepository(db),
	)
}

func TestCreateAssignmentParsesDueDate(t *testing.T) {
	db := newTestDB(t)
	svc := newAssignmentService(db)

	class := &model.Class{Name: "Math", TeacherID: 1}
	require.NoError(t, db.Create(class).Error)
	topic := &model.Topic{Name: "Algebra", ClassID: class.ID}
	require.NoError(t, db.Create(topic).Error)

	assignment, err := svc.Create(1, topic.ID, "Homework", "Chapter 3", "2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), assignment.DueDate)

	_, err = svc.Create(1, topic.ID, "Homework", "Chapter 3", "15/09/2026")
	var verr *util.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCreateAssignmentForeignTopic(t *testing.T) {
	db := newTestDB(t)
	svc := newAssignmentService(db)

	class := &model.Class{Name: "Math", TeacherID: 1}
	require.NoError(t, db.Create(class).Error)
	topic := &model.Topic{Name: "Algebra", ClassID: class.ID}
	require.NoError(t, db.Create(topic).Error)

	_, err := svc.Create(2, topic.ID, "Homework", "", "2026-09-15")
	assert.ErrorIs(t, err, util.ErrForbidden)

	_, err = svc.Create(1, topic.ID+5, "Homework", "", "2026-09-15")
	assert.ErrorIs(t, err, util.ErrNotFound)
}
