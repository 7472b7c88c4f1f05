package consts

// 响应中的 status 字段
const (
	StatusOK                 = "ok"
	StatusUserCreated        = "user-created"
	StatusLoggedIn           = "logged-in"
	StatusTokenRefreshed     = "token-refreshed"
	StatusPostCreated        = "post-created"
	StatusLiked              = "liked"
	StatusUnliked            = "unliked"
	StatusAlreadyLiked       = "already-liked"
	StatusNotLiked           = "not-liked"
	StatusPostNotFound       = "post-not-found"
	StatusUserNotFound       = "user-not-found"
	StatusUsernameExists     = "username-exists"
	StatusInvalidCredentials = "invalid-credentials"
	StatusUnauthorized       = "unauthorized"
	StatusValidationFailed   = "validation-failed"
	StatusInvalidJSON        = "invalid-json"
	StatusInvalidRange       = "invalid-range"
	StatusStorageUnavailable = "storage-unavailable"
	StatusInternalError      = "internal-error"
)

// 分页
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

const DateLayout = "2006-01-02"

// TraceHeader 请求链路 ID 的请求头
const TraceHeader = "X-Trace-ID"
