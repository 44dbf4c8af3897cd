package response

var (
	ErrInvalidRequest = newError(40001, "请求参数错误")
	ErrValidation     = newError(40002, "必填项未填写或格式不正确")
	ErrPhotoRejected  = newError(40003, "图片无法处理")
	ErrTokenInvalid   = newError(40101, "会话无效或已过期")
	ErrForbidden      = newError(40301, "密码不正确")
	ErrNotFound       = newError(40401, "目标不存在")
	ErrConflict       = newError(40901, "当前操作与打开的对话框不符")
	ErrServerInternal = newError(50001, "服务器内部错误")
	ErrSession        = newError(50002, "会话存储错误")
	ErrStore          = newError(50201, "数据后端请求失败")
	ErrSetupRequired  = newError(50301, "服务尚未完成配置")
)
