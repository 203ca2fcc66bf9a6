package code

import (
	"errors"
	"fmt"
)

type ErrCode int

const (
	Success ErrCode = 0

	UnDefineErr ErrCode = iota + 1000
	ParamErr
	QueryRecordErr
	RecordNotFound
	CreateDataErr
	RPCHttpErr
	RPCHttpCodeErr
	CacheErr
)

// antoine domain
const (
	SubstanceNotFound ErrCode = iota + 2000
	TemperatureOutOfRange
	AntoineDomainErr
	InvalidCoefRange
)

var codeMsg = map[ErrCode]string{
	Success:        "success",
	UnDefineErr:    "undefined error",
	ParamErr:       "parameter error",
	QueryRecordErr: "query record error",
	RecordNotFound: "record not found",
	CreateDataErr:  "create data error",
	RPCHttpErr:     "rpc http request error",
	RPCHttpCodeErr: "rpc http response code error",
	CacheErr:       "cache error",

	SubstanceNotFound:     "substance not found",
	TemperatureOutOfRange: "temperature out of supported range",
	AntoineDomainErr:      "antoine equation domain error",
	InvalidCoefRange:      "invalid coefficient temperature range",
}

func (c ErrCode) String() string {
	if msg, ok := codeMsg[c]; ok {
		return msg
	}
	return fmt.Sprintf("error code %d", int(c))
}

func (c ErrCode) Error() string {
	return c.String()
}

func (c ErrCode) Int() int {
	return int(c)
}

func (c ErrCode) WithMsg(msg string) *Err {
	return &Err{Code: c, Msg: msg}
}

func (c ErrCode) WithMsgf(format string, args ...any) *Err {
	return &Err{Code: c, Msg: fmt.Sprintf(format, args...)}
}

func (c ErrCode) WithErr(err error) *Err {
	e := &Err{Code: c, cause: err}
	if err != nil {
		e.Msg = err.Error()
	}
	return e
}

// Err is an ErrCode carrying a detail message and an optional cause.
type Err struct {
	Code  ErrCode
	Msg   string
	cause error
}

func (e *Err) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code.String(), e.Msg)
}

func (e *Err) Is(target error) bool {
	c, ok := target.(ErrCode)
	return ok && c == e.Code
}

func (e *Err) Unwrap() error {
	return e.cause
}

// Of extracts the ErrCode carried by err, or UnDefineErr.
func Of(err error) ErrCode {
	if err == nil {
		return Success
	}
	var e *Err
	if errors.As(err, &e) {
		return e.Code
	}
	var c ErrCode
	if errors.As(err, &c) {
		return c
	}
	return UnDefineErr
}
