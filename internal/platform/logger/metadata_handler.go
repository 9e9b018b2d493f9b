package logger

import (
	"context"
	"log/slog"
	"os"
)

// MetadataHandler is a slog.Handler that stamps a fixed set of string
// attributes on every record before passing it on.
type MetadataHandler struct {
	handler  slog.Handler
	metadata map[string]string
}

// NewMetadataHandler wraps next so that every record carries metadata.
func NewMetadataHandler(next slog.Handler, metadata map[string]string) *MetadataHandler {
	copied := make(map[string]string, len(metadata))
	for k, v := range metadata {
		copied[k] = v
	}
	return &MetadataHandler{handler: next, metadata: copied}
}

// Enabled implements the slog.Handler interface.
func (h *MetadataHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface.
func (h *MetadataHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &MetadataHandler{handler: h.handler.WithAttrs(attrs), metadata: h.metadata}
}

// WithGroup implements the slog.Handler interface.
func (h *MetadataHandler) WithGroup(name string) slog.Handler {
	return &MetadataHandler{handler: h.handler.WithGroup(name), metadata: h.metadata}
}

// Handle implements the slog.Handler interface.
func (h *MetadataHandler) Handle(ctx context.Context, record slog.Record) error {
	enhanced := record.Clone()
	for key, value := range h.metadata {
		enhanced.AddAttrs(slog.String(key, value))
	}
	return h.handler.Handle(ctx, enhanced)
}

// ciMetadata collects build metadata exported by common CI runners.
// It is empty outside CI.
func ciMetadata() map[string]string {
	if os.Getenv("CI") != "true" {
		return nil
	}

	metadata := map[string]string{"ci": "true"}
	for env, key := range map[string]string{
		"GITHUB_RUN_ID":     "ci_run_id",
		"GITHUB_SHA":        "ci_commit",
		"GITHUB_REF_NAME":   "ci_ref",
		"GITHUB_WORKFLOW":   "ci_workflow",
		"RENDER_GIT_COMMIT": "deploy_commit",
	} {
		if v := os.Getenv(env); v != "" {
			metadata[key] = v
		}
	}
	return metadata
}
