package controller

import (
	"teacher_portal_backend/internal/service"
	"teacher_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

// List godoc
// @Summary 作业列表（含主题下拉数据）
// @Tags 作业
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /teachers/assignments/ [get]
func (c *AssignmentController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	overview, err := c.AssignmentService.Overview(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// FeedbackHome godoc
// @Summary 批改首页，列出名下作业
// @Tags 作业
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /teachers/feedback/ [get]
func (c *AssignmentController) FeedbackHome(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	assignments, err := c.AssignmentService.ListForTeacher(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"assignments": assignments})
}

type CreateAssignmentRequest struct {
	Name        string `form:"name" json:"name" binding:"required"`
	Description string `form:"description" json:"description"`
	DueDate     string `form:"due_date" json:"due_date" binding:"required"`
	TopicID     uint   `form:"topic" json:"topic" binding:"required"`
}

// Create godoc
// @Summary 创建作业，成功后跳回作业列表
// @Tags 作业
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateAssignmentRequest true "作业信息，due_date 为 yyyy-mm-dd"
// @Success 302
// @Failure 400 {object} util.Response
// @Router /teachers/assignments/create/ [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	var req CreateAssignmentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := util.GetUserFromContext(ctx)
	_, err := c.AssignmentService.Create(user.UserID, req.TopicID, req.Name, req.Description, req.DueDate)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Redirect(ctx, util.WithMessage(util.AssignmentListPath(), "The assignment was created."))
}

// Detail godoc
// @Summary 作业详情
// @Tags 作业
// @Produce json
// @Security ApiKeyAuth
// @Param assignmentId path int true "作业ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /teachers/assignments/{assignmentId}/ [get]
func (c *AssignmentController) Detail(ctx *gin.Context) {
	assignmentID, ok := paramID(ctx, "assignmentId")
	if !ok {
		return
	}

	user := util.GetUserFromContext(ctx)
	assignment, err := c.AssignmentService.Detail(user.UserID, assignmentID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"name":        assignment.Name,
		"dueDate":     assignment.DueDate.Format("2006-01-02"),
		"description": assignment.Description,
	})
}
