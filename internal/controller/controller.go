package controller

import (
	"errors"
	"teacher_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondServiceError 业务层错误到HTTP状态的统一映射
func respondServiceError(ctx *gin.Context, err error) {
	var verr *util.ValidationError
	switch {
	case errors.Is(err, util.ErrNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrForbidden):
		util.Forbidden(ctx)
	case errors.As(err, &verr):
		util.BadRequest(ctx, verr.Msg)
	default:
		util.LogInternalError(ctx, err)
	}
}

// paramID 解析路径里的资源ID
func paramID(ctx *gin.Context, name string) (uint, bool) {
	id, err := parseID(ctx.Param(name))
	if err != nil {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return id, true
}
