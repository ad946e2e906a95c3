package service

import (
	"context"
	"encoding/json"
	"fmt"
	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/internal/repository"
	"teacher_portal_backend/internal/util"
	"teacher_portal_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const questionCacheTTL = 5 * time.Minute

type QuizService struct {
	QuizRepo     *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
	TopicRepo    *repository.TopicRepository
	ClassRepo    *repository.ClassRepository
	Storage      *StorageService
	RDB          *redis.Client
}

func NewQuizService(
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	topicRepo *repository.TopicRepository,
	classRepo *repository.ClassRepository,
	storage *StorageService,
	rdb *redis.Client,
) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		QuestionRepo: questionRepo,
		TopicRepo:    topicRepo,
		ClassRepo:    classRepo,
		Storage:      storage,
		RDB:          rdb,
	}
}

// QuizOverview 测验列表页：主题下拉框 + 测验
type QuizOverview struct {
	Topics  []model.Topic `json:"topics"`
	Quizzes []model.Quiz  `json:"quizzes"`
}

// DecodedQuestion 详情页展示用，正确答案已译成选项字母
type DecodedQuestion struct {
	ID      uint   `json:"id"`
	Text    string `json:"text"`
	Correct string `json:"correct"`
	A       string `json:"a"`
	B       string `json:"b"`
	C       string `json:"c"`
	D       string `json:"d"`
}

// QuizDetail 测验详情
type QuizDetail struct {
	Quiz      model.Quiz        `json:"quiz"`
	Questions []DecodedQuestion `json:"questions"`
}

func (s *QuizService) Overview(teacherID uint) (*QuizOverview, error) {
	topics, err := s.TopicRepo.ListByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	quizzes, err := s.QuizRepo.ListByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	return &QuizOverview{Topics: topics, Quizzes: quizzes}, nil
}

func (s *QuizService) ListForTeacher(teacherID uint) ([]model.Quiz, error) {
	return s.QuizRepo.ListByTeacher(teacherID)
}

func decodeQuestion(q model.Question) (DecodedQuestion, error) {
	if !model.ValidAnswerIndex(q.CorrectAnswer) {
		return DecodedQuestion{}, util.NewValidationError(
			"question %d has correct_answer %d outside 0..%d", q.ID, q.CorrectAnswer, len(model.AnswerChoices)-1)
	}
	return DecodedQuestion{
		ID:      q.ID,
		Text:    q.QuestionText,
		Correct: model.AnswerChoices[q.CorrectAnswer],
		A:       q.AAnswerText,
		B:       q.BAnswerText,
		C:       q.CAnswerText,
		D:       q.DAnswerText,
	}, nil
}

func (s *QuizService) Detail(ctx context.Context, teacherID, quizID uint) (*QuizDetail, error) {
	quiz, err := authorizeQuiz(s.QuizRepo, s.TopicRepo, s.ClassRepo, teacherID, quizID)
	if err != nil {
		return nil, err
	}

	if cached := s.cachedQuestions(ctx, quizID); cached != nil {
		return &QuizDetail{Quiz: *quiz, Questions: cached}, nil
	}

	questions, err := s.QuestionRepo.ListByQuiz(quizID)
	if err != nil {
		return nil, err
	}

	decoded := make([]DecodedQuestion, 0, len(questions))
	for _, q := range questions {
		d, err := decodeQuestion(q)
		if err != nil {
			return nil, err
		}
		decoded = append(decoded, d)
	}

	s.cacheQuestions(ctx, quizID, decoded)

	return &QuizDetail{Quiz: *quiz, Questions: decoded}, nil
}

type CreateQuestionInput struct {
	Question string
	Answer   int
	AAnswer  string
	BAnswer  string
	CAnswer  string
	DAnswer  string
}

func (s *QuizService) CreateQuestion(ctx context.Context, teacherID, quizID uint, in CreateQuestionInput) (*model.Question, error) {
	if _, err := authorizeQuiz(s.QuizRepo, s.TopicRepo, s.ClassRepo, teacherID, quizID); err != nil {
		return nil, err
	}

	if !model.ValidAnswerIndex(in.Answer) {
		return nil, util.NewValidationError("correct answer must be 0..%d", len(model.AnswerChoices)-1)
	}

	question := &model.Question{
		QuestionText:  in.Question,
		CorrectAnswer: in.Answer,
		AAnswerText:   in.AAnswer,
		BAnswerText:   in.BAnswer,
		CAnswerText:   in.CAnswer,
		DAnswerText:   in.DAnswer,
		QuizID:        quizID,
	}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}

	s.invalidateQuestions(ctx, quizID)

	return question, nil
}

func questionCacheKey(quizID uint) string {
	return fmt.Sprintf("quiz:%d:questions", quizID)
}

func (s *QuizService) cachedQuestions(ctx context.Context, quizID uint) []DecodedQuestion {
	if s.RDB == nil {
		return nil
	}
	raw, err := s.RDB.Get(ctx, questionCacheKey(quizID)).Bytes()
	if err != nil {
		return nil
	}
	var decoded []DecodedQuestion
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil
	}
	return decoded
}

func (s *QuizService) cacheQuestions(ctx context.Context, quizID uint, decoded []DecodedQuestion) {
	if s.RDB == nil {
		return
	}
	raw, err := json.Marshal(decoded)
	if err != nil {
		return
	}
	if err := s.RDB.Set(ctx, questionCacheKey(quizID), raw, questionCacheTTL).Err(); err != nil {
		logger.Log.Warn("question cache write failed", zap.Uint("quizId", quizID), zap.Error(err))
	}
}

func (s *QuizService) invalidateQuestions(ctx context.Context, quizID uint) {
	if s.RDB == nil {
		return
	}
	if err := s.RDB.Del(ctx, questionCacheKey(quizID)).Err(); err != nil {
		logger.Log.Warn("question cache invalidation failed", zap.Uint("quizId", quizID), zap.Error(err))
	}
}
