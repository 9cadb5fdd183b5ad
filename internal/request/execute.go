package request

import (
	"context"
	"fmt"
)

// Execute runs op under the uniform request contract:
//
//   - onLoading(true) is invoked before op starts, onLoading(false) in a
//     deferred step that runs on every exit path — normal return, error
//     return, and panic inside op. The flag therefore transitions
//     false→true→false exactly once per call.
//   - Exactly one of success/failure is produced: the returned Outcome is
//     never still pending.
//   - No retries: retry policy, if any, belongs to the caller.
//
// A panic inside op is recovered and reported as a KindUnknown failure
// rather than unwinding into the event loop.
func Execute[T any](ctx context.Context, op func(ctx context.Context) (T, error), onLoading func(bool)) (outcome Outcome[T]) {
	if onLoading != nil {
		onLoading(true)
		defer onLoading(false)
	}

	defer func() {
		if r := recover(); r != nil {
			outcome = Failure[T](&Error{
				Kind:    KindUnknown,
				Message: fmt.Sprintf("%v", r),
				cause:   fmt.Errorf("recovered panic: %v", r),
			})
		}
	}()

	data, err := op(ctx)
	if err != nil {
		return Failure[T](Normalize(err))
	}

	return Success(data)
}
