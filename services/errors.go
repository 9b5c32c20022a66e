// file: services/errors.go
package services

// ErrorKind 引擎错误分类，HTTP 层据此映射业务错误码
type ErrorKind string

const (
	KindNotFound         ErrorKind = "not_found"
	KindOrderViolation   ErrorKind = "order_violation"
	KindTeamMismatch     ErrorKind = "team_mismatch"
	KindAlreadyResolved  ErrorKind = "already_resolved"
	KindDeadlineExceeded ErrorKind = "deadline_exceeded"
	KindValidationFault  ErrorKind = "validation_fault"
)

// EngineError 只携带分类和给用户看的消息，不携带内部细节
type EngineError struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *EngineError) Error() string {
	return e.Message
}

func (e *EngineError) Unwrap() error {
	return e.cause
}

func newEngineError(kind ErrorKind, msg string) *EngineError {
	return &EngineError{Kind: kind, Message: msg}
}

func validationFault(msg string, cause error) *EngineError {
	return &EngineError{Kind: KindValidationFault, Message: msg, cause: cause}
}

// KindOf 提取错误分类；非引擎错误一律按基础设施故障处理
func KindOf(err error) ErrorKind {
	if e, ok := err.(*EngineError); ok {
		return e.Kind
	}
	return KindValidationFault
}
