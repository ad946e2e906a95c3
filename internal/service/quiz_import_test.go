package service

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/internal/util"
)

const sampleCSV = "What is 2+2?,1,3,4,5,6\n" +
	"Largest planet?,2,Mars,Venus,Jupiter,Pluto\n" +
	"Boiling point of water (C)?,0,100,90,80,70\n"

func TestImportCSVCreatesQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	quiz := seedQuiz(t, db, 1)

	result, err := svc.ImportCSV(context.Background(), 1, quiz.ID, csvUpload(t, "quiz.csv", sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, quiz.ID, result.QuizID)
	assert.Equal(t, 3, result.Imported)
	assert.Empty(t, result.Skipped)

	var questions []model.Question
	require.NoError(t, db.Where("quiz_id = ?", quiz.ID).Order("id").Find(&questions).Error)
	require.Len(t, questions, 3)

	assert.Equal(t, "What is 2+2?", questions[0].QuestionText)
	assert.Equal(t, 1, questions[0].CorrectAnswer)
	assert.Equal(t, "3", questions[0].AAnswerText)
	assert.Equal(t, "6", questions[0].DAnswerText)

	// 导入审计记录与题目同批落库
	var imports []model.QuizImport
	require.NoError(t, db.Where("quiz_id = ?", quiz.ID).Find(&imports).Error)
	require.Len(t, imports, 1)
	assert.Equal(t, "quiz.csv", imports[0].Filename)
	assert.Equal(t, 3, imports[0].RowCount)
	assert.Equal(t, 0, imports[0].SkippedRows)
}

func TestImportCSVSkipsMalformedRows(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	quiz := seedQuiz(t, db, 1)

	content := "Good question?,0,a,b,c,d\n" +
		"Too short,1,a\n" +
		"Bad answer index?,7,a,b,c,d\n" +
		"Not a number?,x,a,b,c,d\n"

	result, err := svc.ImportCSV(context.Background(), 1, quiz.ID, csvUpload(t, "mixed.csv", content))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Skipped, 3)
	assert.Equal(t, 2, result.Skipped[0].Row)
	assert.Equal(t, 3, result.Skipped[1].Row)
	assert.Equal(t, 4, result.Skipped[2].Row)

	var count int64
	require.NoError(t, db.Model(&model.Question{}).Where("quiz_id = ?", quiz.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestImportCSVNoImportableRows(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	quiz := seedQuiz(t, db, 1)

	content := "only,two\nbad,9,a,b,c,d\n"

	_, err := svc.ImportCSV(context.Background(), 1, quiz.ID, csvUpload(t, "bad.csv", content))
	var verr *util.ValidationError
	require.ErrorAs(t, err, &verr)

	// 整批拒绝：题目和审计记录都不落库
	var questions int64
	require.NoError(t, db.Model(&model.Question{}).Count(&questions).Error)
	assert.Zero(t, questions)
	var imports int64
	require.NoError(t, db.Model(&model.QuizImport{}).Count(&imports).Error)
	assert.Zero(t, imports)
}

func TestImportCSVRejectsBeforeParsing(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	quiz := seedQuiz(t, db, 1)

	tests := []struct {
		name string
		fh   *multipart.FileHeader
		want string
	}{
		{"no file", nil, "missing file"},
		{"empty filename", &multipart.FileHeader{}, "missing file name"},
		{"wrong extension", csvUpload(t, "quiz.txt", sampleCSV), "unsupported type: quiz.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ImportCSV(context.Background(), 1, quiz.ID, tt.fh)
			var verr *util.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.want, verr.Msg)
		})
	}

	var count int64
	require.NoError(t, db.Model(&model.Question{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestImportCSVOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	quiz := seedQuiz(t, db, 1)

	// 别人的测验
	_, err := svc.ImportCSV(context.Background(), 2, quiz.ID, csvUpload(t, "quiz.csv", sampleCSV))
	assert.ErrorIs(t, err, util.ErrForbidden)

	// 不存在的测验
	_, err = svc.ImportCSV(context.Background(), 1, quiz.ID+100, csvUpload(t, "quiz.csv", sampleCSV))
	assert.ErrorIs(t, err, util.ErrNotFound)
}
