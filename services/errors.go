package services

import "net/http"

// ErrorKind 领域错误分类
type ErrorKind int

const (
	ErrValidation ErrorKind = iota // 输入不合法，400
	ErrAuth                        // 凭证或权限问题，401
	ErrNotFound                    // 记录不存在或不属于调用者，400
	ErrConflict                    // 唯一性冲突，400
	ErrStorage                     // 存储层意外失败，500
)

// Error 领域服务统一返回的错误值，永不跨越传输层抛出
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode 映射到HTTP状态码
// 注意：NotFound按原有约定返回400，避免泄露记录是否存在
func (e *Error) StatusCode() int {
	switch e.Kind {
	case ErrAuth:
		return http.StatusUnauthorized
	case ErrStorage:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func validationErr(msg string) *Error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func authErr(msg string) *Error {
	return &Error{Kind: ErrAuth, Message: msg}
}

func notFoundErr(msg string) *Error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func conflictErr(msg string) *Error {
	return &Error{Kind: ErrConflict, Message: msg}
}

func storageErr(err error) *Error {
	return &Error{Kind: ErrStorage, Message: err.Error()}
}
