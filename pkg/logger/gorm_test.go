package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return NewGormLogger(zap.New(core).Sugar(), level, 100*time.Millisecond), logs
}

func TestGormLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT * FROM users", 3 }

	t.Run("logs query at info level", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Info)

		l.Trace(context.Background(), time.Now(), sqlFn, nil)

		assert.Equal(t, 1, logs.FilterMessage("SQL query").Len())
	})

	t.Run("logs errors with request id", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Warn)
		ctx := WithRequestID(context.Background(), "req-1")

		l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

		entries := logs.FilterMessage("SQL error").All()
		assert.Len(t, entries, 1)
		assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	})

	t.Run("ignores record not found", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Warn)

		l.Trace(context.Background(), time.Now(), sqlFn, gormlogger.ErrRecordNotFound)

		assert.Zero(t, logs.Len())
	})

	t.Run("warns on slow queries", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Warn)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Equal(t, 1, logs.Len())
		assert.Equal(t, zap.WarnLevel, logs.All()[0].Level)
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Silent)

		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Zero(t, logs.Len())
	})
}

func TestGormLogger_LogMode(t *testing.T) {
	l, _ := newObservedGormLogger(gormlogger.Warn)

	silent := l.LogMode(gormlogger.Silent)

	assert.NotSame(t, l, silent)
	assert.Equal(t, gormlogger.Warn, l.logLevel)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, GormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, GormLogLevel("info"))
	assert.Equal(t, gormlogger.Error, GormLogLevel("error"))
	assert.Equal(t, gormlogger.Warn, GormLogLevel("unknown"))
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")

	assert.Equal(t, "abc", GetRequestID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
}
