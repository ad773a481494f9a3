package lisp

import "fmt"

// ErrorVal implements the error interface so that reader errors can be first
// class forms.  The error message is stored in the Err field and the error
// condition in the Str field.
type ErrorVal LVal

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	msg := e.Err.Error()
	if e.Source != nil {
		msg = fmt.Sprintf("%s: %s", e.Source, msg)
	}
	if e.Str != "" {
		return fmt.Sprintf("%s: %s", e.Str, msg)
	}
	return msg
}

// Error returns an LVal with type LError representing err.
func Error(err error) *LVal {
	return &LVal{
		Type: LError,
		Err:  err,
	}
}

// ErrorConditionf returns an LVal with type LError carrying a condition
// string and a formatted error message.
func ErrorConditionf(condition string, format string, v ...interface{}) *LVal {
	return &LVal{
		Type: LError,
		Str:  condition,
		Err:  fmt.Errorf(format, v...),
	}
}

// Condition returns the condition string of an error form.
func (v *LVal) Condition() string {
	if v.Type != LError {
		return ""
	}
	return v.Str
}

// GoError converts an error form into a Go error.  GoError returns nil when v
// is not an error form.
func GoError(v *LVal) error {
	if v.Type != LError {
		return nil
	}
	return (*ErrorVal)(v)
}
