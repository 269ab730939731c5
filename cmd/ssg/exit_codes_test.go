package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	ssg "github.com/alnah/go-ssg"
	"github.com/alnah/go-ssg/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic error", errors.New("boom"), ExitGeneral},
		{"no usable output", ssg.ErrNoOutput, ExitGeneral},
		{"missing target", ssg.ErrTargetNotFound, ExitIO},
		{"clean failure", ssg.ErrCleanOutput, ExitIO},
		{"fs not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"cli no target", ErrNoTarget, ExitUsage},
		{"conflicting targets", ErrConflictingTargets, ExitUsage},
		{"clean with single file", ErrCleanSingleFile, ExitUsage},
		{"invalid extension", ssg.ErrInvalidExtension, ExitUsage},
		{"invalid worker count", ssg.ErrInvalidWorkerCount, ExitUsage},
		{"unknown template", ssg.ErrUnknownTemplate, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForWrappedErrors(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("running: %w", fmt.Errorf("%w: /nope", ssg.ErrTargetNotFound))
	if got := exitCodeFor(wrapped); got != ExitIO {
		t.Errorf("wrapped sentinel lost: got %d, want %d", got, ExitIO)
	}
}
