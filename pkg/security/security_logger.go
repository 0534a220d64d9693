// Package security provides structured logging for abuse-relevant events on
// the public endpoints: rate-limit triggers, validation failures, and
// lookups with unknown offer tokens.
package security

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventValidationFailed   EventType = "validation_failed"
	EventUnknownOfferToken  EventType = "unknown_offer_token"
	EventUnauthorizedAccess EventType = "unauthorized_access"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp   time.Time              `json:"timestamp"`
	Service     string                 `json:"service"`
	Environment string                 `json:"env"`
	Level       string                 `json:"level"`
	Event       EventType              `json:"event"`
	IP          string                 `json:"ip,omitempty"`
	UserAgent   string                 `json:"user_agent,omitempty"`
	RequestID   string                 `json:"request_id,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

// SecurityLogger provides structured logging for security events
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
	// Optional: DB persistence function (wired to the activity log)
	persistFunc func(ctx context.Context, event SecurityEvent) error
}

var defaultLogger *SecurityLogger

// InitSecurityLogger initializes the security logger with Zap
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	sl := &SecurityLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
	defaultLogger = sl
	return sl
}

// DefaultLogger returns the default security logger instance
func DefaultLogger() *SecurityLogger {
	if defaultLogger == nil {
		return InitSecurityLogger("outreach-backend", getEnvironment())
	}
	return defaultLogger
}

// SetPersistFunc sets the function to persist events to database
func (sl *SecurityLogger) SetPersistFunc(f func(ctx context.Context, event SecurityEvent) error) {
	sl.persistFunc = f
}

// Log logs a security event
func (sl *SecurityLogger) Log(ctx context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = sl.serviceName
	event.Environment = sl.environment

	level := zapcore.WarnLevel
	if event.Event == EventUnauthorizedAccess {
		level = zapcore.ErrorLevel
	}
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)

	if sl.persistFunc != nil {
		go func(e SecurityEvent) {
			// Request context may already be canceled by the time this runs
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := sl.persistFunc(ctx, e); err != nil {
				sl.zapLogger.Error("Failed to persist security event", zap.Error(err))
			}
		}(event)
	}
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventRateLimitTriggered,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Details:   map[string]interface{}{"endpoint": endpoint},
	})
}

// LogValidationFailed logs a rejected public submission
func (sl *SecurityLogger) LogValidationFailed(ctx context.Context, ip, requestID, endpoint, reason string) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventValidationFailed,
		IP:        ip,
		RequestID: requestID,
		Details:   map[string]interface{}{"endpoint": endpoint, "reason": reason},
	})
}

// LogUnknownOfferToken logs an offer-page load with a token that resolves
// to no candidate. Bursts of these usually mean token guessing.
func (sl *SecurityLogger) LogUnknownOfferToken(ctx context.Context, ip, userAgent, requestID string) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventUnknownOfferToken,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

func getEnvironment() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}
