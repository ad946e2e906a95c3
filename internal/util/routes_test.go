package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathBuilders(t *testing.T) {
	assert.Equal(t, "/teachers/class/7/", ClassPath(7))
	assert.Equal(t, "/teachers/objectives/3/", TopicPath(3))
	assert.Equal(t, "/teachers/quizzes/12/", QuizPath(12))
	assert.Equal(t, "/teachers/upload-quiz", QuizUploadPath())
}

func TestWithMessageEscapes(t *testing.T) {
	got := WithMessage(QuizListPath(), "Imported 3 questions, skipped 1 malformed rows.")
	assert.Equal(t, "/teachers/quizzes/?msg=Imported+3+questions%2C+skipped+1+malformed+rows.", got)

	assert.Equal(t, "/teachers/upload-quiz?error=missing+file", WithError(QuizUploadPath(), "missing file"))
}

func TestIsTabularFile(t *testing.T) {
	assert.True(t, IsTabularFile("quiz.csv"))
	assert.True(t, IsTabularFile("QUIZ.CSV"))
	assert.False(t, IsTabularFile("quiz.txt"))
	assert.False(t, IsTabularFile("quiz"))
	assert.False(t, IsTabularFile(""))
}

func TestSafeFilename(t *testing.T) {
	assert.Equal(t, "my_quiz-1.csv", SafeFilename("my_quiz-1.csv"))
	assert.Equal(t, "_quiz.csv", SafeFilename("../!quiz.csv"))
	assert.Equal(t, "passwd", SafeFilename("/etc/passwd"))
}
