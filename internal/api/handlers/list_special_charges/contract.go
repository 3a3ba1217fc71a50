package list_special_charges

import (
	"context"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

type SpecialChargeRepository interface {
	List(ctx context.Context) ([]domain.SpecialCharge, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
