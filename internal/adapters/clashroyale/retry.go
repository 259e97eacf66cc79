package clashroyale

import (
	"time"

	"github.com/sethvargo/go-retry"
)

// RetryPolicy aplica solo a respuestas 429. Intento n (desde 0) espera Base + n*Step.
type RetryPolicy struct {
	MaxAttempts int
	Base        time.Duration
	Step        time.Duration
}

// Un reintento, 0.5s de espera.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 2, Base: 500 * time.Millisecond, Step: time.Second}
}

// backoff es stateful: uno nuevo por llamada.
func (p RetryPolicy) backoff() retry.Backoff {
	attempt := 0
	next := retry.BackoffFunc(func() (time.Duration, bool) {
		d := p.Base + time.Duration(attempt)*p.Step
		attempt++
		return d, false
	})
	retries := p.MaxAttempts - 1
	if retries < 0 {
		retries = 0
	}
	return retry.WithMaxRetries(uint64(retries), next)
}
