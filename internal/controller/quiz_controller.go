package controller

import (
	"errors"
	"fmt"
	"strconv"
	"teacher_portal_backend/internal/service"
	"teacher_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// List godoc
// @Summary 测验列表（含主题下拉数据）
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /teachers/quizzes/ [get]
func (c *QuizController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	overview, err := c.QuizService.Overview(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// UploadForm godoc
// @Summary CSV导入表单页数据（可选的测验列表）
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /teachers/upload-quiz [get]
func (c *QuizController) UploadForm(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	quizzes, err := c.QuizService.ListForTeacher(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"quizzes": quizzes,
		"msg":     ctx.Query("msg"),
		"error":   ctx.Query("error"),
	})
}

// Upload godoc
// @Summary 导入测验CSV。六列：题目, 答案下标0-3, 选项A-D
// @Tags 测验
// @Accept mpfd
// @Security ApiKeyAuth
// @Param quiz formData int true "目标测验ID"
// @Param file formData file true "CSV文件"
// @Success 302
// @Router /teachers/upload-quiz [post]
func (c *QuizController) Upload(ctx *gin.Context) {
	quizID, err := parseID(ctx.PostForm("quiz"))
	if err != nil {
		util.Redirect(ctx, util.WithError(util.QuizUploadPath(), "missing target quiz"))
		return
	}

	// 没有文件让业务层按校验顺序报错
	fh, _ := ctx.FormFile("file")

	user := util.GetUserFromContext(ctx)
	result, err := c.QuizService.ImportCSV(ctx.Request.Context(), user.UserID, quizID, fh)
	if err != nil {
		var verr *util.ValidationError
		if errors.As(err, &verr) {
			// 校验失败：一行都没写，带着提示跳回上传页
			util.Redirect(ctx, util.WithError(util.QuizUploadPath(), verr.Msg))
			return
		}
		respondServiceError(ctx, err)
		return
	}

	msg := fmt.Sprintf("Imported %d questions.", result.Imported)
	if len(result.Skipped) > 0 {
		msg = fmt.Sprintf("Imported %d questions, skipped %d malformed rows.", result.Imported, len(result.Skipped))
	}
	util.Redirect(ctx, util.WithMessage(util.QuizListPath(), msg))
}

// Detail godoc
// @Summary 测验详情，题目的正确答案译为 A-D
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param quizId path int true "测验ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /teachers/quizzes/{quizId}/ [get]
func (c *QuizController) Detail(ctx *gin.Context) {
	quizID, ok := paramID(ctx, "quizId")
	if !ok {
		return
	}

	user := util.GetUserFromContext(ctx)
	detail, err := c.QuizService.Detail(ctx.Request.Context(), user.UserID, quizID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

type CreateQuestionRequest struct {
	Question string `form:"question" json:"question" binding:"required"`
	Answer   string `form:"answer" json:"answer" binding:"required"`
	AAnswer  string `form:"a_answer" json:"a_answer" binding:"required"`
	BAnswer  string `form:"b_answer" json:"b_answer" binding:"required"`
	CAnswer  string `form:"c_answer" json:"c_answer" binding:"required"`
	DAnswer  string `form:"d_answer" json:"d_answer" binding:"required"`
}

// CreateQuestion godoc
// @Summary 创建题目，成功后跳回测验详情
// @Tags 测验
// @Accept json
// @Security ApiKeyAuth
// @Param quizId path int true "测验ID"
// @Param body body CreateQuestionRequest true "题目信息"
// @Success 302
// @Failure 400 {object} util.Response
// @Router /teachers/questions/create/{quizId}/ [post]
func (c *QuizController) CreateQuestion(ctx *gin.Context) {
	quizID, ok := paramID(ctx, "quizId")
	if !ok {
		return
	}

	var req CreateQuestionRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer, err := strconv.Atoi(req.Answer)
	if err != nil {
		util.BadRequest(ctx, "correct answer must be an integer index")
		return
	}

	user := util.GetUserFromContext(ctx)
	_, err = c.QuizService.CreateQuestion(ctx.Request.Context(), user.UserID, quizID, service.CreateQuestionInput{
		Question: req.Question,
		Answer:   answer,
		AAnswer:  req.AAnswer,
		BAnswer:  req.BAnswer,
		CAnswer:  req.CAnswer,
		DAnswer:  req.DAnswer,
	})
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Redirect(ctx, util.WithMessage(util.QuizPath(quizID), "The question was created."))
}
