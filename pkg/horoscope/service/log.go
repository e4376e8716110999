package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hastrology/hastrology/pkg/horoscope"
)

const serviceName = "HoroscopeService"

const signatureDisplaySize = 16

type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the horoscope Service.
// Horoscope text is never logged; payment signatures are redacted.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Status(ctx context.Context, walletAddress string) (res *horoscope.StatusResult, err error) {
	start := time.Now()

	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Status"),
			zap.String("wallet_address", walletAddress),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("Status failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Debug("Status completed", append(fields, zap.String("status", res.Status))...)
	}()

	return ls.svc.Status(ctx, walletAddress)
}

func (ls *logService) Confirm(ctx context.Context, req *horoscope.ConfirmRequest) (res *horoscope.ConfirmResult, err error) {
	start := time.Now()
	wallet, signature := "", ""
	if req != nil {
		wallet, signature = req.WalletAddress, req.Signature
	}

	ls.logger.Info("Confirm started",
		zap.String("service", serviceName),
		zap.String("method", "Confirm"),
		zap.String("wallet_address", wallet),
		zap.String("signature", redactSignature(signature)),
	)

	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Confirm"),
			zap.String("wallet_address", wallet),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("Confirm failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Info("Confirm completed", append(fields, zap.String("date", res.Date))...)
	}()

	return ls.svc.Confirm(ctx, req)
}

func (ls *logService) History(ctx context.Context, walletAddress string, limit int) (list []*horoscope.Horoscope, err error) {
	start := time.Now()

	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "History"),
			zap.String("wallet_address", walletAddress),
			zap.Int("limit", limit),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("History failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Debug("History completed", append(fields, zap.Int("count", len(list)))...)
	}()

	return ls.svc.History(ctx, walletAddress, limit)
}

// redactSignature shows only the edges of a payment signature
func redactSignature(sig string) string {
	if sig == "" {
		return "<empty>"
	}
	n := len(sig)
	if n > signatureDisplaySize {
		return fmt.Sprintf("%s...%s (%d chars)", sig[:8], sig[n-4:], n)
	}
	return fmt.Sprintf("<%d chars>", n)
}
