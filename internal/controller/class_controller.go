package controller

import (
	"fmt"
	"teacher_portal_backend/internal/service"
	"teacher_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ClassController struct {
	ClassService *service.ClassService
}

func NewClassController(classService *service.ClassService) *ClassController {
	return &ClassController{ClassService: classService}
}

// Home godoc
// @Summary 教师首页，列出名下班级
// @Tags 班级
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /teachers/ [get]
func (c *ClassController) Home(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	classes, err := c.ClassService.ListForTeacher(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"classes": classes})
}

// List godoc
// @Summary 班级列表
// @Tags 班级
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /teachers/classes/ [get]
func (c *ClassController) List(ctx *gin.Context) {
	c.Home(ctx)
}

// CreateForm godoc
// @Summary 建班表单页数据
// @Tags 班级
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /teachers/classes/create/ [get]
func (c *ClassController) CreateForm(ctx *gin.Context) {
	util.Success(ctx, gin.H{"msg": ctx.Query("msg")})
}

type CreateClassRequest struct {
	Name string `form:"name" json:"name" binding:"required"`
}

// Create godoc
// @Summary 创建班级
// @Tags 班级
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateClassRequest true "班级信息"
// @Success 201 {object} util.Response
// @Router /teachers/classes/create/ [post]
func (c *ClassController) Create(ctx *gin.Context) {
	var req CreateClassRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := util.GetUserFromContext(ctx)
	class, err := c.ClassService.Create(user.UserID, req.Name)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"id":      class.ID,
		"name":    class.Name,
		"message": fmt.Sprintf("Your class, %s, was created with an id of %d.", class.Name, class.ID),
	})
}

// Detail godoc
// @Summary 班级详情，聚合主题/作业/学生/成绩
// @Tags 班级
// @Produce json
// @Security ApiKeyAuth
// @Param classId path int true "班级ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /teachers/class/{classId}/ [get]
func (c *ClassController) Detail(ctx *gin.Context) {
	classID, ok := paramID(ctx, "classId")
	if !ok {
		return
	}

	user := util.GetUserFromContext(ctx)
	detail, err := c.ClassService.Detail(user.UserID, classID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}
