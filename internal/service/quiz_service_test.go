package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/internal/util"
)

func TestDetailDecodesAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	quiz := seedQuiz(t, db, 1)

	for i := 0; i < 4; i++ {
		require.NoError(t, db.Create(&model.Question{
			QuestionText:  fmt.Sprintf("Question %d", i),
			CorrectAnswer: i,
			AAnswerText:   "a", BAnswerText: "b", CAnswerText: "c", DAnswerText: "d",
			QuizID: quiz.ID,
		}).Error)
	}

	detail, err := svc.Detail(context.Background(), 1, quiz.ID)
	require.NoError(t, err)
	require.Len(t, detail.Questions, 4)

	for i, want := range []string{"A", "B", "C", "D"} {
		assert.Equal(t, want, detail.Questions[i].Correct)
	}
}

func TestDetailRejectsCorruptAnswerIndex(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	quiz := seedQuiz(t, db, 1)

	require.NoError(t, db.Create(&model.Question{
		QuestionText:  "broken",
		CorrectAnswer: 9,
		QuizID:        quiz.ID,
	}).Error)

	_, err := svc.Detail(context.Background(), 1, quiz.ID)
	var verr *util.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDetailOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	quiz := seedQuiz(t, db, 1)

	_, err := svc.Detail(context.Background(), 2, quiz.ID)
	assert.ErrorIs(t, err, util.ErrForbidden)

	_, err = svc.Detail(context.Background(), 1, quiz.ID+5)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestCreateQuestion(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	quiz := seedQuiz(t, db, 1)

	question, err := svc.CreateQuestion(context.Background(), 1, quiz.ID, CreateQuestionInput{
		Question: "Capital of France?",
		Answer:   2,
		AAnswer:  "London", BAnswer: "Berlin", CAnswer: "Paris", DAnswer: "Rome",
	})
	require.NoError(t, err)
	assert.NotZero(t, question.ID)
	assert.Equal(t, quiz.ID, question.QuizID)

	var stored model.Question
	require.NoError(t, db.First(&stored, question.ID).Error)
	assert.Equal(t, 2, stored.CorrectAnswer)
}

func TestCreateQuestionRejectsBadAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	quiz := seedQuiz(t, db, 1)

	for _, answer := range []int{-1, 4, 42} {
		_, err := svc.CreateQuestion(context.Background(), 1, quiz.ID, CreateQuestionInput{
			Question: "out of range",
			Answer:   answer,
		})
		var verr *util.ValidationError
		assert.ErrorAs(t, err, &verr, "answer %d", answer)
	}

	var count int64
	require.NoError(t, db.Model(&model.Question{}).Count(&count).Error)
	assert.Zero(t, count)
}
