package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// With creates a child logger with additional fields and returns a new context
func With(ctx context.Context, fields map[string]any) context.Context {
	logger := FromContext(ctx)
	childCtx := logger.With()

	for k, v := range fields {
		childCtx = childCtx.Interface(k, v)
	}

	childLogger := childCtx.Logger()
	return WithContext(ctx, childLogger)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithSessionID creates a child logger with a session_id field
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("session_id", sessionID).Logger()
	return WithContext(ctx, childLogger)
}

// WithNodeID creates a child logger with a node_id field
func WithNodeID(ctx context.Context, nodeID uint32) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Uint32("node_id", nodeID).Logger()
	return WithContext(ctx, childLogger)
}

// WithPanelID creates a child logger with a panel_id field
func WithPanelID(ctx context.Context, panelID uint32) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Uint32("panel_id", panelID).Logger()
	return WithContext(ctx, childLogger)
}
