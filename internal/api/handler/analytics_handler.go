package handler

import (
	"SocialNetwork/internal/api/dto"
	"SocialNetwork/internal/pkg/consts"
	"SocialNetwork/internal/pkg/response"
	"SocialNetwork/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

// LikesByDay 按日统计点赞数
func (s *AnalyticsHandler) LikesByDay(c *gin.Context) {
	var query dto.AnalyticsQuery
	_ = c.ShouldBindQuery(&query)

	res, err := s.analyticsSvc.Query(c.Request.Context(), query.DateFrom, query.DateTo)
	if err != nil {
		response.Error(c, err)
		return
	}

	if res.FromCache {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	response.Success(c, consts.StatusOK, res.Days)
}
