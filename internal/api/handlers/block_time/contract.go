package block_time

import (
	"context"

	blockTime "github.com/m04kA/SMC-SalonAvailability/internal/usecase/block_time"
)

type BlockTimeUseCase interface {
	Execute(ctx context.Context, req *blockTime.Request) (*blockTime.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
