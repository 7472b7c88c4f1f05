package dto

// AnalyticsQuery 点赞统计查询参数，保持原始字符串用于缓存 key
type AnalyticsQuery struct {
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

// DailyLikesDTO 单日点赞数
type DailyLikesDTO struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}
