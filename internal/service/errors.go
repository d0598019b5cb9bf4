package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrFieldRequired     = errors.New("标题和内容不能为空")
	ErrEmailInvalid      = errors.New("邮箱格式不正确")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserExist         = errors.New("用户名或邮箱已存在")
	ErrPasswordIncorrect = errors.New("用户名或密码错误")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrDramaNotFound     = errors.New("剧集不存在")
	ErrVoteInvalid       = errors.New("投票方向无效")
	ErrActionInvalid     = errors.New("不支持的成员操作")
	ErrNotOwner          = errors.New("无权操作他人内容")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrFieldRequired:     BadRequest,
	ErrEmailInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserExist:         BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrPostNotFound:      NotFound,
	ErrCommentNotFound:   NotFound,
	ErrDramaNotFound:     NotFound,
	ErrVoteInvalid:       BadRequest,
	ErrActionInvalid:     BadRequest,
	ErrNotOwner:          Forbidden,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
