package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hastrology/hastrology/pkg/user"
)

const serviceName = "UserService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the user Service.
// It logs method entry/exit, duration and errors. Birth details are never logged.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Register wraps the service method with logging
func (ls *logService) Register(ctx context.Context, req *user.RegisterRequest) (resp *user.RegisterResponse, err error) {
	start := time.Now()
	wallet := ""
	if req != nil {
		wallet = req.WalletAddress
	}

	ls.logger.Info("Register started",
		zap.String("service", serviceName),
		zap.String("method", "Register"),
		zap.String("wallet_address", wallet),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("Register failed",
				zap.String("service", serviceName),
				zap.String("method", "Register"),
				zap.String("wallet_address", wallet),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("Register completed",
			zap.String("service", serviceName),
			zap.String("method", "Register"),
			zap.String("wallet_address", wallet),
			zap.Bool("created", resp.Created),
			zap.String("token", redactToken(resp.Token)),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.Register(ctx, req)
}

// GetUser wraps the service method with logging
func (ls *logService) GetUser(ctx context.Context, walletAddress string) (usr *user.User, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Warn("GetUser failed",
				zap.String("service", serviceName),
				zap.String("method", "GetUser"),
				zap.String("wallet_address", walletAddress),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Debug("GetUser completed",
			zap.String("service", serviceName),
			zap.String("method", "GetUser"),
			zap.String("wallet_address", walletAddress),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.GetUser(ctx, walletAddress)
}

// redactToken keeps only the JWT header segment prefix so tokens cannot be replayed from logs
func redactToken(token string) string {
	const visible = 8
	if len(token) <= visible {
		return "<redacted>"
	}
	return token[:visible] + "..."
}
