package controller

import (
	"teacher_portal_backend/internal/service"
	"teacher_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TopicController struct {
	TopicService *service.TopicService
}

func NewTopicController(topicService *service.TopicService) *TopicController {
	return &TopicController{TopicService: topicService}
}

// List godoc
// @Summary 主题列表（含班级下拉数据）
// @Tags 主题
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /teachers/topics/ [get]
func (c *TopicController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	overview, err := c.TopicService.Overview(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

type CreateTopicRequest struct {
	Name    string `form:"name" json:"name" binding:"required"`
	ClassID uint   `form:"class" json:"class" binding:"required"`
}

// Create godoc
// @Summary 创建主题，返回带确认信息的主题列表
// @Tags 主题
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateTopicRequest true "主题信息"
// @Success 201 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /teachers/topics/create/ [post]
func (c *TopicController) Create(ctx *gin.Context) {
	var req CreateTopicRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := util.GetUserFromContext(ctx)
	topic, err := c.TopicService.Create(user.UserID, req.ClassID, req.Name)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	overview, err := c.TopicService.Overview(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"message": "Your topic was created.",
		"topic":   topic,
		"classes": overview.Classes,
		"topics":  overview.Topics,
	})
}

// Detail godoc
// @Summary 主题详情：名下作业与测验
// @Tags 主题
// @Produce json
// @Security ApiKeyAuth
// @Param topicId path int true "主题ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /teachers/objectives/{topicId}/ [get]
func (c *TopicController) Detail(ctx *gin.Context) {
	topicID, ok := paramID(ctx, "topicId")
	if !ok {
		return
	}

	user := util.GetUserFromContext(ctx)
	detail, err := c.TopicService.Detail(user.UserID, topicID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}
