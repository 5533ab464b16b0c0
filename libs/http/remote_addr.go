package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
)

const RequestIDHeader = "X-Request-Id"

type contextKey int

const (
	remoteIPAddrKey contextKey = iota
	requestIDKey
)

var ErrNoRemoteAddr = errors.New("remote address is not in ip:port format")

// RemoteAddr returns the address of the caller, the first hop of
// X-Forwarded-For taking precedence over the connection.
func RemoteAddr(r *http.Request) (string, error) {
	if ip, ok := RemoteIPAddrFromContext(r.Context()); ok {
		return ip, nil
	}
	if forward := r.Header.Get("X-Forwarded-For"); forward != "" {
		first := strings.TrimSpace(strings.Split(forward, ",")[0])
		if net.ParseIP(first) != nil {
			return first, nil
		}
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || net.ParseIP(ip) == nil {
		return "", ErrNoRemoteAddr
	}
	return ip, nil
}

func WithRemoteIPAddr(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, remoteIPAddrKey, ip)
}

func RemoteIPAddrFromContext(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(remoteIPAddrKey).(string)
	return ip, ok && ip != ""
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
