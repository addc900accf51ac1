// Package slog provides log/slog decorators for the seosheet interfaces.
package slog
