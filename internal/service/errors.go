package service

import "errors"

// Kind 业务错误类别
// 对外统一压平为 {code:-1, msg}，类别仅用于内部区分与日志
type Kind int

const (
	KindValidation Kind = iota + 1 // 参数校验失败
	KindNotFound                   // 记录不存在
	KindConflict                   // 数据冲突（重复）
	KindUpstream                   // 数据库等上游错误
)

// Error 带类别的业务错误
type Error struct {
	Kind Kind
	Msg  string // 面向客户端的消息
	Err  error  // 底层错误（可为空）
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Validation 构造参数校验错误
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// NotFound 构造记录不存在错误
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Conflict 构造数据冲突错误
func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// Upstream 包装上游错误
func Upstream(err error) error {
	return &Error{Kind: KindUpstream, Msg: err.Error(), Err: err}
}

// KindOf 提取错误类别，非业务错误按上游错误处理
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUpstream
}

// ClientMessage 提取面向客户端的错误消息
func ClientMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}
