package services

import "context"

// Service is a single application use case. Cross-cutting concerns such
// as rate limiting and admin authorization wrap a Service in another
// Service with the same input and result types.
type Service[In any, Out any] interface {
	Run(ctx context.Context, input In) (Out, error)
}
