package repo

import (
	"errors"
	"net"
	"syscall"

	"bankclients/internal/domain"
)

// classify 把数据源的原始错误映射成 domain.FetchError
func classify(err error) error {
	var fe *domain.FetchError
	if errors.As(err, &fe) {
		return fe
	}
	if isConnectivity(err) {
		return domain.ErrNetworkUnavailable
	}
	return domain.Unknown(err, "fetch users failed: "+err.Error())
}

// isConnectivity DNS 解析失败 / 建连失败 / 网络不可达
func isConnectivity(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ECONNRESET)
}
