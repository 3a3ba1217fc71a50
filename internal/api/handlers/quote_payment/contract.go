package quote_payment

import (
	"context"

	quotePayment "github.com/avlok/LMS-LodgeService/internal/usecase/quote_payment"
)

type QuotePaymentUseCase interface {
	Execute(ctx context.Context, req *quotePayment.Request) (*quotePayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
