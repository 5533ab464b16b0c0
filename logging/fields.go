package logging

import (
	"time"

	"go.uber.org/zap"
)

func String(key, val string) zap.Field { return zap.String(key, val) }

func Strings(key string, val []string) zap.Field { return zap.Strings(key, val) }

func Int(key string, val int) zap.Field { return zap.Int(key, val) }

func Int64(key string, val int64) zap.Field { return zap.Int64(key, val) }

func Int64s(key string, val []int64) zap.Field { return zap.Int64s(key, val) }

func Bool(key string, val bool) zap.Field { return zap.Bool(key, val) }

func Duration(key string, val time.Duration) zap.Field { return zap.Duration(key, val) }

func Error(err error) zap.Field { return zap.Error(err) }

// Model is the name of the remote model a log line is about.
func Model(name string) zap.Field { return zap.String("model", name) }

// Method is the remote method a log line is about.
func Method(name string) zap.Field { return zap.String("method", name) }

// RequestID correlates the log line with an HTTP request.
func RequestID(id string) zap.Field { return zap.String("request-id", id) }
