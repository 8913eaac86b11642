package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid   = errors.New("参数错误")
	ErrNoContentToday = errors.New("未找到今日生成的内容")
	ErrPostNotFound   = errors.New("指定时段的内容不存在")
	UnExpectedError   = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:   BadRequest,
	ErrNoContentToday: NotFound,
	ErrPostNotFound:   NotFound,
	UnExpectedError:   InternalServerError,
}
