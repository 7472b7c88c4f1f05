package util

import (
	"SocialNetwork/internal/pkg/consts"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// ParseID 解析路径中的自增 ID
func ParseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// ParseDate 按 YYYY-MM-DD 解析为 UTC 零点
func ParseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("empty date")
	}
	d, err := time.ParseInLocation(consts.DateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse date %q", raw)
	}
	return d, nil
}

// Paginate 规范化分页参数，返回 offset 与 limit
func Paginate(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = consts.DefaultPageSize
	}
	if pageSize > consts.MaxPageSize {
		pageSize = consts.MaxPageSize
	}
	return (page - 1) * pageSize, pageSize
}
