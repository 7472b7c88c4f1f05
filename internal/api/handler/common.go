package handler

import (
	"SocialNetwork/internal/pkg/consts"
	"SocialNetwork/internal/pkg/response"
	"SocialNetwork/internal/pkg/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// bindJSON 解析并校验请求体，失败时已写出响应
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.Fail(c, http.StatusBadRequest, consts.StatusInvalidJSON, "request body must be valid JSON")
		return false
	}
	if err := util.ValidateDTO(obj); err != nil {
		response.Error(c, err)
		return false
	}
	return true
}

// pathID 解析路径参数中的 ID，失败时已写出响应
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := util.ParseID(c.Param(name))
	if err != nil {
		response.Error(c, util.NewValidationError(name, "must be a positive integer"))
		return 0, false
	}
	return id, true
}
