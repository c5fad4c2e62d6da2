// Package faults reports categorized contract violations with an injectable
// policy: panic, log-and-continue, or halt.
//
// The callable wrappers raise conditions here instead of choosing a failure
// mode themselves. The process installs exactly one policy via Use; library
// code only ever calls Raise.
package faults

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Code categorizes a condition.
type Code string

// UninitializedCall reports an invocation attempted through an unbound
// wrapper.
const UninitializedCall Code = "uninitialized_call"

// Condition is a categorized contract violation. Incident is a correlation
// id stamped at raise time, so a logged condition can be matched to the call
// site that observed it.
type Condition struct {
	Code     Code
	Site     string
	Incident string
}

func (c Condition) Error() string {
	return fmt.Sprintf("%s at %s (incident %s)", c.Code, c.Site, c.Incident)
}

// Handler consumes a reported condition and decides whether the faulting
// call continues.
type Handler func(Condition)

var (
	mu      sync.RWMutex
	handler Handler = Panicking()
)

// Use installs h as the process-wide handler and returns a restore function
// reinstating the previous one. The restore function should be called when
// the handler is no longer needed.
func Use(h Handler) (restore func()) {
	mu.Lock()
	prev := handler
	handler = h
	mu.Unlock()
	return func() {
		mu.Lock()
		handler = prev
		mu.Unlock()
	}
}

// Raise reports a condition with a fresh incident id through the installed
// handler. Whether Raise returns is the handler's choice; with a continuing
// policy the faulting operation yields a zero result.
func Raise(code Code, site string) {
	mu.RLock()
	h := handler
	mu.RUnlock()
	h(Condition{Code: code, Site: site, Incident: uuid.NewString()})
}

// Panicking raises each condition as a panic carrying the Condition, which
// implements error and can be recovered. This is the default policy.
func Panicking() Handler {
	return func(c Condition) {
		panic(c)
	}
}

// Logging records each condition on logger and continues.
func Logging(logger *zap.Logger) Handler {
	return func(c Condition) {
		logger.Error("condition raised",
			zap.String("code", string(c.Code)),
			zap.String("site", c.Site),
			zap.String("incident", c.Incident),
		)
	}
}

// Halting logs each condition at fatal level, stopping the process.
func Halting(logger *zap.Logger) Handler {
	return func(c Condition) {
		logger.Fatal("unrecoverable condition",
			zap.String("code", string(c.Code)),
			zap.String("site", c.Site),
			zap.String("incident", c.Incident),
		)
	}
}
