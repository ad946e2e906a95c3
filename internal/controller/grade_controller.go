package controller

import (
	"teacher_portal_backend/internal/service"
	"teacher_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GradeController struct {
	GradeService *service.GradeService
}

func NewGradeController(gradeService *service.GradeService) *GradeController {
	return &GradeController{GradeService: gradeService}
}

type AddGradeRequest struct {
	StudentID    uint    `form:"student" json:"student" binding:"required"`
	AssignmentID uint    `form:"assignment" json:"assignment" binding:"required"`
	Score        float64 `form:"grade" json:"grade"`
}

// Add godoc
// @Summary 录入成绩，成功后跳回班级详情
// @Tags 成绩
// @Accept json
// @Security ApiKeyAuth
// @Param classId path int true "班级ID"
// @Param body body AddGradeRequest true "成绩信息"
// @Success 302
// @Failure 403 {object} util.Response
// @Router /teachers/grades/add/{classId}/ [post]
func (c *GradeController) Add(ctx *gin.Context) {
	classID, ok := paramID(ctx, "classId")
	if !ok {
		return
	}

	var req AddGradeRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := util.GetUserFromContext(ctx)
	_, err := c.GradeService.Record(user.UserID, classID, req.StudentID, req.AssignmentID, req.Score)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Redirect(ctx, util.WithMessage(util.ClassPath(classID), "Grade submitted."))
}
