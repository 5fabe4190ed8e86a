package middleware

import (
	"context"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ConcurrencyLimiter bounds how many calls of the selected methods run at
// once. Callers over the limit wait for a free slot until their context ends.
type ConcurrencyLimiter struct {
	semaphore chan struct{}
	methods   map[string]struct{}

	mu     sync.RWMutex
	active int
	total  int64
}

func NewConcurrencyLimiter(limit int, methods ...string) *ConcurrencyLimiter {
	set := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		set[m] = struct{}{}
	}
	return &ConcurrencyLimiter{
		semaphore: make(chan struct{}, limit),
		methods:   set,
	}
}

func (cl *ConcurrencyLimiter) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, limited := cl.methods[info.FullMethod]; !limited {
			return handler(ctx, req)
		}

		select {
		case cl.semaphore <- struct{}{}:
		case <-ctx.Done():
			return nil, status.Errorf(codes.ResourceExhausted, "too many concurrent requests: %v", ctx.Err())
		}

		cl.update(1)
		defer func() {
			<-cl.semaphore
			cl.update(-1)
		}()

		return handler(ctx, req)
	}
}

func (cl *ConcurrencyLimiter) update(delta int) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	cl.active += delta
	if delta > 0 {
		cl.total++
	}
}

// Stats returns the number of in-flight and admitted calls.
func (cl *ConcurrencyLimiter) Stats() (active int, total int64) {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return cl.active, cl.total
}

func (cl *ConcurrencyLimiter) Limit() int {
	return cap(cl.semaphore)
}
