package consts

const (
	AnalyticsKey = "analytics:"
)
