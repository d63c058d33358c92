package logger

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// FieldOperation is the structured log field key for the batch operation name.
	FieldOperation = "operation"
	// FieldInput is the number of items handed to an operation.
	FieldInput = "input"
	// FieldOutput is the number of items an operation returned.
	FieldOutput = "output"
	// FieldElapsed is the wall time of an operation.
	FieldElapsed = "elapsed"
)

// Operation names used in FieldOperation.
const (
	OpRankSeekers  = "rank_seekers"
	OpRankPostings = "rank_postings"
	OpClassify     = "classify"
	OpScore        = "score"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// MatchFields describes one batch operation run.
func MatchFields(operation string, input, output int, elapsed time.Duration) []zap.Field {
	fields := StringFields(StringField{Key: FieldOperation, Value: operation})
	return append(fields,
		zap.Int(FieldInput, input),
		zap.Int(FieldOutput, output),
		zap.Duration(FieldElapsed, elapsed),
	)
}
