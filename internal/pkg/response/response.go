package response

import (
	"SocialNetwork/internal/api/dto"
	"SocialNetwork/internal/pkg/consts"
	"SocialNetwork/internal/pkg/util"
	"SocialNetwork/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success 200 返回
func Success(c *gin.Context, status string, data any) {
	c.JSON(http.StatusOK, dto.Response{
		Code:   http.StatusOK,
		Status: status,
		Data:   data,
	})
}

// Created 201 返回
func Created(c *gin.Context, status string, data any) {
	c.JSON(http.StatusCreated, dto.Response{
		Code:   http.StatusCreated,
		Status: status,
		Data:   data,
	})
}

// Fail 失败返回，code 即 HTTP 状态码
func Fail(c *gin.Context, code int, status string, message string) {
	c.AbortWithStatusJSON(code, dto.Response{
		Code:    code,
		Status:  status,
		Message: message,
	})
}

// FailWithData 失败返回并附带数据
func FailWithData(c *gin.Context, code int, status string, message string, data any) {
	c.AbortWithStatusJSON(code, dto.Response{
		Code:    code,
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// Error 将错误映射为响应
func Error(c *gin.Context, err error) {
	var ve *util.ValidationError
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.Response{
			Code:    http.StatusBadRequest,
			Status:  consts.StatusValidationFailed,
			Message: "invalid input",
			Errors:  ve.Fields,
		})
		return
	}

	if info, ok := service.LookupError(err); ok {
		Fail(c, info.Code, info.Status, err.Error())
		return
	}

	var se *service.StorageError
	if errors.As(err, &se) {
		log.ErrorContext(c.Request.Context(), "storage unavailable", "op", se.Op, "err", se.Err)
		Fail(c, http.StatusServiceUnavailable, consts.StatusStorageUnavailable, "storage temporarily unavailable, retry later")
		return
	}

	log.ErrorContext(c.Request.Context(), "unexpected error", "err", err)
	Fail(c, http.StatusInternalServerError, consts.StatusInternalError, "internal server error")
}
