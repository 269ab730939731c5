package ssg

import "errors"

// Sentinel errors for site generation.
var (
	ErrNoTarget           = errors.New("no target specified")
	ErrTargetNotFound     = errors.New("target does not exist")
	ErrTargetIsDirectory  = errors.New("target is a directory (single-file mode expects a file)")
	ErrTargetIsFile       = errors.New("target is a file (directory mode expects a directory)")
	ErrInvalidExtension   = errors.New("file must have a .md, .markdown, .dj or .djot extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrUnknownTemplate    = errors.New("unknown built-in template")
	ErrCleanOutput        = errors.New("failed to clean output directory")
	ErrNoOutput           = errors.New("run produced no usable output")
)
