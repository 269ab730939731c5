package ssg

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alnah/go-ssg/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// resolveOutputDir returns the effective output root for a run.
func resolveOutputDir(cfg Config) string {
	if cfg.OutputDir != "" {
		return cfg.OutputDir
	}
	if cfg.SingleFile {
		return "."
	}
	return DefaultOutputDir
}

// writeSite materializes final documents and verbatim assets under the
// output root. When Clean is set the output root is fully removed
// first; no write may begin until the clean completes, and a clean
// failure is fatal for the whole run since later writes could not be
// trusted to land in a clean state. Individual write failures are
// recorded per path and the run continues.
func writeSite(cfg Config, scan *siteScan, docs map[string][]byte, result *GenerationResult) error {
	outDir := resolveOutputDir(cfg)

	if cfg.Clean {
		if outDir == "." || outDir == "/" {
			return fmt.Errorf("%w: refusing to remove %s", ErrCleanOutput, outDir)
		}
		if err := os.RemoveAll(outDir); err != nil {
			return fmt.Errorf("%w: %v", ErrCleanOutput, err)
		}
	}

	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return err
	}

	// Deterministic write order.
	outputs := make([]string, 0, len(docs))
	for rel := range docs {
		outputs = append(outputs, rel)
	}
	sort.Strings(outputs)

	for _, rel := range outputs {
		dest := filepath.Join(outDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dest), dirPermissions); err != nil {
			result.Failures = append(result.Failures, PageFailure{Path: rel, Stage: StageWrite, Err: err})
			continue
		}
		// #nosec G306 -- generated HTML is meant to be readable
		if err := os.WriteFile(dest, docs[rel], filePermissions); err != nil {
			result.Failures = append(result.Failures, PageFailure{Path: rel, Stage: StageWrite, Err: err})
			continue
		}
		result.Written = append(result.Written, rel)
	}

	for _, asset := range scan.Assets {
		src := filepath.Join(scan.Root, filepath.FromSlash(asset.SourcePath))
		dest := filepath.Join(outDir, filepath.FromSlash(asset.SourcePath))
		if err := os.MkdirAll(filepath.Dir(dest), dirPermissions); err != nil {
			result.Failures = append(result.Failures, PageFailure{Path: asset.SourcePath, Stage: StageWrite, Err: err})
			continue
		}
		if err := fileutil.CopyFile(src, dest, filePermissions); err != nil {
			result.Failures = append(result.Failures, PageFailure{Path: asset.SourcePath, Stage: StageWrite, Err: err})
			continue
		}
		result.CopiedAssets = append(result.CopiedAssets, asset.SourcePath)
	}

	return nil
}
