// Package controller provides output adapters for displaying check results.
package controller

import (
	"context"

	m "badwords.dev/pkg/badwords/internal/model"
)

// ColorMode selects whether output is colorized.
type ColorMode string

// Available ColorMode values.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode maps a config value to a ColorMode, defaulting to ColorAuto.
func ParseColorMode(value string) ColorMode {
	switch ColorMode(value) {
	case ColorAlways, ColorNever:
		return ColorMode(value)
	default:
		return ColorAuto
	}
}

// UI defines the interface for displaying check progress and results.
// Implementations can use different output methods.
type UI interface {
	DisplayRepo(ctx context.Context, repo m.Repo)
	DisplayRepoRootNotFound(ctx context.Context, startDir m.Path)
	DisplayFileError(ctx context.Context, path m.Path, err error)
	DisplayFindings(ctx context.Context, cfg m.Configuration, result m.GroupResult)
	DisplaySuccess(ctx context.Context)
	DisplayPlan(ctx context.Context, plans []m.GroupPlan) error
	DisplayConfiguration(ctx context.Context, cfg m.Configuration) error
	DisplayCreated(ctx context.Context, path m.Path)
}
