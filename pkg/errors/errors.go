package errors

import "fmt"

// ========== 错误码常量定义 ==========

// CodeSuccess 成功码
const (
	CodeSuccess = 200
)

// HTTP层错误码 (400-599)
const (
	CodeInvalidParam = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeConflict     = 409
	CodeServerError  = 500
)

// ========== 服务层业务错误码 ==========

const (
	// ErrCodeNotFound 目标实体不存在
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAccessDenied 操作人不是资源的创建者或所有者
	ErrCodeAccessDenied = "ACCESS_DENIED"
	// ErrCodeBusinessRule 业务规则冲突（黑名单、重复入住、在住租客阻止删除等）
	ErrCodeBusinessRule = "BUSINESS_RULE_VIOLATION"
	// ErrCodePropertyHasRelatedData 房产存在关联数据，未强制删除时返回（不产生任何写入）
	ErrCodePropertyHasRelatedData = "PROPERTY_HAS_RELATED_DATA"
	// ErrCodeDeleteProperty 房产删除事务失败
	ErrCodeDeleteProperty = "DELETE_PROPERTY_ERROR"
	// ErrCodeDeleteUnit 单元删除事务失败
	ErrCodeDeleteUnit = "DELETE_UNIT_ERROR"
)

// ServiceError 服务层错误，携带业务错误码和可选的详情数据
type ServiceError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

// New 创建服务层错误
func New(code, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

// NewWithDetails 创建带详情的服务层错误
func NewWithDetails(code, message string, details interface{}) *ServiceError {
	return &ServiceError{Code: code, Message: message, Details: details}
}

// Wrap 包装底层错误，保留原始错误信息
func Wrap(code, message string, err error) *ServiceError {
	return &ServiceError{Code: code, Message: fmt.Sprintf("%s: %v", message, err)}
}
