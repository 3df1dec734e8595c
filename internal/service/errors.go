package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrUserUsernameExist   = errors.New("用户名已存在")
	ErrUserEmailExist      = errors.New("邮箱已注册")
	ErrPasswordIncorrect   = errors.New("密码错误")
	ErrProjectNotFound     = errors.New("项目不存在")
	ErrCategoryNotFound    = errors.New("分类不存在")
	ErrBlogPostNotFound    = errors.New("文章不存在")
	ErrCommentNotFound     = errors.New("评论不存在")
	ErrCommentEmpty        = errors.New("评论内容不能为空")
	ErrCommentTooLong      = errors.New("评论内容超出长度限制")
	ErrCommentImageTooBig  = errors.New("评论图片超出大小限制")
	ErrReplyToReply        = errors.New("只能回复一级评论")
	ErrActionDuplicate     = errors.New("重复操作")
	ErrFileNotSupported    = errors.New("不支持的文件类型")
	ErrFileNotExist        = errors.New("文件不存在")
	ErrNotificationMissing = errors.New("通知不存在")
	ErrTestimonialNotFound = errors.New("推荐语不存在")
	ErrResumeNotFound      = errors.New("简历不存在")
	ErrAdUnitNotFound      = errors.New("广告单元不存在")
	ErrContactNotFound     = errors.New("留言不存在")
	UnauthorizedError      = errors.New("权限不足")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrUserNotFound:        NotFound,
	ErrUserUsernameExist:   BadRequest,
	ErrUserEmailExist:      BadRequest,
	ErrPasswordIncorrect:   Unauthorized,
	ErrProjectNotFound:     NotFound,
	ErrCategoryNotFound:    NotFound,
	ErrBlogPostNotFound:    NotFound,
	ErrCommentNotFound:     NotFound,
	ErrCommentEmpty:        BadRequest,
	ErrCommentTooLong:      BadRequest,
	ErrCommentImageTooBig:  BadRequest,
	ErrReplyToReply:        BadRequest,
	ErrActionDuplicate:     BadRequest,
	ErrFileNotSupported:    BadRequest,
	ErrFileNotExist:        NotFound,
	ErrNotificationMissing: NotFound,
	ErrTestimonialNotFound: NotFound,
	ErrResumeNotFound:      NotFound,
	ErrAdUnitNotFound:      NotFound,
	ErrContactNotFound:     NotFound,
	UnauthorizedError:      Unauthorized,
	UnExpectedError:        InternalServerError,
}
