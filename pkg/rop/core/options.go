package core

import "context"

type OptionKey string

const (
	AwaitOptionKey OptionKey = "await_options"
)

type AwaitOptions struct {
	// AwaitCompletion keeps waiting for an in-flight operation after the
	// context is done. Enabled unless set otherwise.
	AwaitCompletion bool
}

func WithAwaitCompletion(ctx context.Context, awaitCompletion bool) context.Context {
	return context.WithValue(ctx, AwaitOptionKey, AwaitOptions{AwaitCompletion: awaitCompletion})
}

func IsAwaitCompletionEnabled(ctx context.Context, defaultAwaitCompletion bool) bool {
	options, ok := ctx.Value(AwaitOptionKey).(AwaitOptions)
	if ok {
		return options.AwaitCompletion
	}
	return defaultAwaitCompletion
}
