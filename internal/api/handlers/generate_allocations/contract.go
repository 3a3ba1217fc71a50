package generate_allocations

import (
	"context"

	generateAllocations "github.com/avlok/LMS-LodgeService/internal/usecase/generate_allocations"
)

type GenerateAllocationsUseCase interface {
	Execute(ctx context.Context, req *generateAllocations.Request) (*generateAllocations.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
