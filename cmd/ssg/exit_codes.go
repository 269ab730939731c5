package main

import (
	"errors"
	"os"

	ssg "github.com/alnah/go-ssg"
	"github.com/alnah/go-ssg/internal/assets"
	"github.com/alnah/go-ssg/internal/config"
)

// Exit codes for the ssg CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // Site generated (possibly with skipped pages)
	ExitGeneral = 1 // General/unexpected error, or zero usable output
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Target not found, permission denied, clean failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ssg.ErrTargetNotFound) ||
		errors.Is(err, ssg.ErrCleanOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoTarget) ||
		errors.Is(err, ErrConflictingTargets) ||
		errors.Is(err, ErrCleanSingleFile) ||
		errors.Is(err, ssg.ErrNoTarget) ||
		errors.Is(err, ssg.ErrTargetIsDirectory) ||
		errors.Is(err, ssg.ErrTargetIsFile) ||
		errors.Is(err, ssg.ErrInvalidExtension) ||
		errors.Is(err, ssg.ErrInvalidWorkerCount) ||
		errors.Is(err, ssg.ErrUnknownTemplate) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) {
		return ExitUsage
	}

	return ExitGeneral
}
