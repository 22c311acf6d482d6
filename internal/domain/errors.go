package domain

import (
	"errors"
	"fmt"
)

// ErrorKind 拉取用户失败的分类
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNetworkUnavailable
	KindCacheNotAvailable
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetworkUnavailable:
		return "network_unavailable"
	case KindCacheNotAvailable:
		return "cache_not_available"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// FetchError 仓库层唯一的错误类型，按 Kind 区分
type FetchError struct {
	Kind   ErrorKind
	UserID int    // 仅 KindNotFound
	Msg    string // 为空时退回 Cause
	Cause  error  // 仅 KindUnknown
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("no user found with id:%d", e.UserID)
	case KindUnknown:
		if e.Msg != "" {
			return e.Msg
		}
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return "unknown error"
	default:
		return e.Msg
	}
}

func (e *FetchError) Unwrap() error { return e.Cause }

// Is 只比较 Kind：errors.Is(err, ErrNotFound) 对任意 id 都成立
func (e *FetchError) Is(target error) bool {
	t, ok := target.(*FetchError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrNetworkUnavailable = &FetchError{Kind: KindNetworkUnavailable, Msg: "internet access not available, check network connection"}
	ErrCacheNotAvailable  = &FetchError{Kind: KindCacheNotAvailable, Msg: "cached data is not available, try fetching remote data"}
	ErrNotFound           = &FetchError{Kind: KindNotFound}
	ErrUnknown            = &FetchError{Kind: KindUnknown}
)

func NotFound(id int) error { return &FetchError{Kind: KindNotFound, UserID: id} }

// Unknown 保留原始错误便于排查；msg 为空时用 cause 的文本
func Unknown(cause error, msg string) error {
	return &FetchError{Kind: KindUnknown, Msg: msg, Cause: cause}
}

// KindOf 非 FetchError 一律视为 KindUnknown
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
