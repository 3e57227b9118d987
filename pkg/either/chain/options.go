package chain

import (
	"context"

	"github.com/google/uuid"
)

type OptionKey string

const (
	IDOptionKey        OptionKey = "chain_id"
	StepLimitOptionKey OptionKey = "step_limit"
)

// DefaultStepLimit of zero leaves RepeatUntil unbounded.
const DefaultStepLimit = 0

type StepLimitOption struct {
	Value int
}

// WithID pins the id of chains started with ctx, e.g. to reuse a request id.
func WithID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, IDOptionKey, id)
}

func WithStepLimit(ctx context.Context, maxSteps int) context.Context {
	return context.WithValue(ctx, StepLimitOptionKey, StepLimitOption{Value: maxSteps})
}

func GetID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(IDOptionKey).(uuid.UUID)
	return id, ok
}

func GetStepLimit(ctx context.Context, defaultLimit int) int {
	option, ok := ctx.Value(StepLimitOptionKey).(StepLimitOption)
	if ok {
		return option.Value
	}
	return defaultLimit
}
