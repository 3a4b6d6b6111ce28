package logger

import (
	"go.uber.org/zap"
)

var Log *zap.Logger

func NewLogger() *zap.Logger {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Log = l
	return l
}

// WithUser returns a logger annotated with the acting user.
func WithUser(userID string, l *zap.Logger) *zap.Logger {
	if userID == "" {
		return l
	}
	return l.With(zap.String("user_id", userID))
}
