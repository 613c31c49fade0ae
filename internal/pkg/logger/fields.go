package logger

import (
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"go.uber.org/zap"
)

// Field type alias so callers do not import zap directly
type Field = zap.Field

// String constructs a field that carries a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 constructs a field that carries an int64 value
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// Bool constructs a field that carries a boolean value
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Duration constructs a field that carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// ErrorField constructs a field that carries an error
func ErrorField(err error) Field {
	return zap.Error(err)
}

// Kind tags an entry with the account kind
func Kind(kind models.Kind) Field {
	return zap.String("kind", string(kind))
}

// Channel tags an entry with the verification channel
func Channel(ch models.Channel) Field {
	return zap.String("channel", string(ch))
}

// AccountID tags an entry with an account id
func AccountID(id int64) Field {
	return zap.Int64("account_id", id)
}
