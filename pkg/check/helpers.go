package check

import (
	"fmt"
)

// Pass sets the result to OK status with a headline message.
func (r *Result) Pass(message string) Result {
	r.Status = StatusOK
	r.Message = message
	r.Err = nil
	return *r
}

// Passf sets the result to OK status with a formatted headline message.
func (r *Result) Passf(format string, args ...interface{}) Result {
	return r.Pass(fmt.Sprintf(format, args...))
}

// Fail sets the result to failed status with a headline message.
func (r *Result) Fail(message string, err error) Result {
	r.Status = StatusFail
	r.Message = message
	r.Err = err
	return *r
}

// Failf sets the result to failed status with a formatted headline message.
func (r *Result) Failf(format string, args ...interface{}) Result {
	return r.Fail(fmt.Sprintf(format, args...), fmt.Errorf(format, args...))
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
