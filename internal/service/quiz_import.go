package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"teacher_portal_backend/internal/model"
	"teacher_portal_backend/internal/util"
	"teacher_portal_backend/pkg/logger"
	"teacher_portal_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
)

// CSV 行格式：题目, 正确答案下标(0-3), 选项A, 选项B, 选项C, 选项D
const (
	importFieldCount = 6
	maxImportSize    = 5 << 20
)

// ImportResult 一次导入的汇总，跳过的行带行号返回给前端
type ImportResult struct {
	QuizID     uint            `json:"quizId"`
	Imported   int             `json:"imported"`
	Skipped    []util.RowError `json:"skipped,omitempty"`
	ArchiveURL string          `json:"archiveUrl,omitempty"`
}

// ImportCSV 校验顺序固定：有文件 → 文件名非空 → 扩展名可识别 → 测验归属。
// 任何一步失败都不会解析或写入任何行。
func (s *QuizService) ImportCSV(ctx context.Context, teacherID, quizID uint, fh *multipart.FileHeader) (*ImportResult, error) {
	if fh == nil {
		return nil, util.NewValidationError("missing file")
	}
	if fh.Filename == "" {
		return nil, util.NewValidationError("missing file name")
	}
	if !util.IsTabularFile(fh.Filename) {
		return nil, util.NewValidationError("unsupported type: %s", fh.Filename)
	}

	if _, err := authorizeQuiz(s.QuizRepo, s.TopicRepo, s.ClassRepo, teacherID, quizID); err != nil {
		return nil, err
	}

	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxImportSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxImportSize {
		return nil, util.NewValidationError("file exceeds %d bytes", maxImportSize)
	}

	questions, skipped := parseQuestionRows(data, quizID)
	if len(questions) == 0 {
		return nil, util.NewValidationError("no importable rows in %s", fh.Filename)
	}

	// 原始文件归档是尽力而为，失败只记日志不影响导入
	archiveURL := s.archiveUpload(ctx, quizID, fh.Filename, data)

	imp := &model.QuizImport{
		QuizID:      quizID,
		Filename:    fh.Filename,
		RowCount:    len(questions),
		SkippedRows: len(skipped),
		ArchiveURL:  archiveURL,
	}

	// 题目和审计记录同一事务落库，坏批次不会留下半截导入
	if err := s.QuestionRepo.CreateBatch(questions, imp); err != nil {
		return nil, err
	}

	monitoring.QuizImportRows.WithLabelValues("imported").Add(float64(len(questions)))
	monitoring.QuizImportRows.WithLabelValues("skipped").Add(float64(len(skipped)))

	s.invalidateQuestions(ctx, quizID)

	return &ImportResult{
		QuizID:     quizID,
		Imported:   len(questions),
		Skipped:    skipped,
		ArchiveURL: archiveURL,
	}, nil
}

// parseQuestionRows 逐行校验，坏行跳过不中断整批
func parseQuestionRows(data []byte, quizID uint) ([]model.Question, []util.RowError) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var questions []model.Question
	var skipped []util.RowError

	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			skipped = append(skipped, util.RowError{Row: row, Msg: err.Error()})
			continue
		}
		if len(record) != importFieldCount {
			skipped = append(skipped, util.RowError{
				Row: row,
				Msg: fmt.Sprintf("expected %d fields, got %d", importFieldCount, len(record)),
			})
			continue
		}

		answer, err := strconv.Atoi(record[1])
		if err != nil || !model.ValidAnswerIndex(answer) {
			skipped = append(skipped, util.RowError{
				Row: row,
				Msg: fmt.Sprintf("correct answer %q is not an index in 0..%d", record[1], len(model.AnswerChoices)-1),
			})
			continue
		}

		questions = append(questions, model.Question{
			QuestionText:  record[0],
			CorrectAnswer: answer,
			AAnswerText:   record[2],
			BAnswerText:   record[3],
			CAnswerText:   record[4],
			DAnswerText:   record[5],
			QuizID:        quizID,
		})
	}

	return questions, skipped
}

func (s *QuizService) archiveUpload(ctx context.Context, quizID uint, filename string, data []byte) string {
	if s.Storage == nil {
		return ""
	}
	name := fmt.Sprintf("quiz-imports/%d/%d_%s", quizID, time.Now().Unix(), util.SafeFilename(filename))
	url, err := s.Storage.Upload(ctx, name, bytes.NewReader(data), int64(len(data)), "text/csv")
	if err != nil {
		logger.Log.Warn("quiz import archive failed",
			zap.Uint("quizId", quizID),
			zap.String("filename", filename),
			zap.Error(err))
		return ""
	}
	return url
}
