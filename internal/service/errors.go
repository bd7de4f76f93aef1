package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid           = errors.New("参数错误")
	ErrUserNotFound           = errors.New("用户不存在")
	ErrUserEmailExist         = errors.New("邮箱已注册")
	ErrPasswordIncorrect      = errors.New("密码错误")
	ErrMemberNotFound         = errors.New("家庭成员不存在")
	ErrNotFamilyAdmin         = errors.New("无权管理该家庭成员")
	ErrDefinitionNotFound     = errors.New("疫苗条目不存在")
	ErrProgressNotFound       = errors.New("接种进度不存在")
	ErrInvalidDoseCount       = errors.New("剂次数量非法")
	ErrBrandMismatch          = errors.New("品牌与疫苗族不匹配")
	ErrBrandNotSelectable     = errors.New("当前进度无需选择品牌")
	ErrBrandRequired          = errors.New("需要先选定品牌")
	ErrScheduleConflict       = errors.New("已存在进行中的接种程序")
	ErrProgressCompleted      = errors.New("接种程序已完成")
	ErrCertificateNotFound    = errors.New("接种证书不存在")
	ErrFileNotSupported       = errors.New("不支持的文件类型")
	ErrContentNotFound        = errors.New("科普内容不存在")
	ErrNotContentOwner        = errors.New("只能修改自己创建的内容")
	ErrRecordNotFound         = errors.New("接种记录不存在")
	ErrPincodeNotFound        = errors.New("无法定位该邮编")
	ErrReminderNotFound       = errors.New("提醒消息不存在")
	UnauthorizedError         = errors.New("权限不足")
	UnExpectedError           = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrUserNotFound:        NotFound,
	ErrUserEmailExist:      BadRequest,
	ErrPasswordIncorrect:   Unauthorized,
	ErrMemberNotFound:      NotFound,
	ErrNotFamilyAdmin:      Unauthorized,
	ErrDefinitionNotFound:  NotFound,
	ErrProgressNotFound:    NotFound,
	ErrInvalidDoseCount:    BadRequest,
	ErrBrandMismatch:       BadRequest,
	ErrBrandNotSelectable:  BadRequest,
	ErrBrandRequired:       BadRequest,
	ErrScheduleConflict:    Conflict,
	ErrProgressCompleted:   BadRequest,
	ErrCertificateNotFound: NotFound,
	ErrFileNotSupported:    BadRequest,
	ErrContentNotFound:     NotFound,
	ErrNotContentOwner:     Unauthorized,
	ErrRecordNotFound:      NotFound,
	ErrPincodeNotFound:     NotFound,
	ErrReminderNotFound:    NotFound,
	UnauthorizedError:      Unauthorized,
	UnExpectedError:        InternalServerError,
}
