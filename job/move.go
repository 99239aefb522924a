package job

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/okseby/huntr/errors"
	"github.com/okseby/huntr/logger"
)

// Move relocates a job folder into the target phase directory and returns
// the new path.
//
// The directory tree is the durable store, so this is the system's only
// commit primitive. It is safe to call repeatedly: a second call with the
// same arguments observes the folder already at its destination and returns
// it unchanged. It must never leave the job in two phases or in none; any
// post-condition it cannot explain surfaces as an assertion failure rather
// than a silently inconsistent path.
//
// When the destination already exists (a second writer raced on the same
// folder name), the side with strictly more files wins and the other side
// is deleted. File count is a heuristic proxy for "more complete data";
// documented behavior, not an invariant to strengthen.
func Move(jobPath, jobsRoot string, target Phase) (string, error) {
	log := logger.Logger.Named("move")

	phaseDir, err := Dir(jobsRoot, target)
	if err != nil {
		return "", err
	}

	src := filepath.Clean(jobPath)
	dst := filepath.Join(phaseDir, filepath.Base(src))
	if src == dst {
		return dst, nil
	}

	srcExists := dirExists(src)
	dstExists := dirExists(dst)

	switch {
	case !srcExists && dstExists:
		// Already moved, likely a repeated call or a racing writer.
		log.Infow("source already relocated",
			logger.FieldPath, dst,
			logger.FieldPhase, target.String())
		return dst, nil

	case !srcExists:
		return "", errors.Newf("job folder does not exist: %s", src)

	case dstExists:
		srcCount := countFiles(src)
		dstCount := countFiles(dst)
		if srcCount > dstCount {
			// Source is more complete: replace the destination with it.
			if err := os.RemoveAll(dst); err != nil {
				return "", errors.Wrapf(err, "failed to remove conflicting destination %s", dst)
			}
			if err := relocate(src, dst); err != nil {
				return "", err
			}
			log.Warnw("destination conflict resolved, source kept",
				logger.FieldPath, dst,
				"source_files", srcCount,
				"destination_files", dstCount)
		} else {
			// Destination is at least as complete: keep it, drop the source.
			if err := os.RemoveAll(src); err != nil {
				return "", errors.Wrapf(err, "failed to remove conflicting source %s", src)
			}
			log.Warnw("destination conflict resolved, destination kept",
				logger.FieldPath, dst,
				"source_files", srcCount,
				"destination_files", dstCount)
		}

	default:
		if err := relocate(src, dst); err != nil {
			return "", err
		}
	}

	// Post-conditions. A violation here means data-loss risk, so it is
	// raised loudly instead of returning an inconsistent path.
	if !dirExists(dst) {
		return "", errors.AssertionFailedf("move postcondition violated: destination %s missing after move", dst)
	}
	if dirExists(src) {
		// Cross-device semantics can copy instead of rename; the stale
		// source is a completed copy and must be removed.
		if err := os.RemoveAll(src); err != nil {
			return "", errors.AssertionFailedf("move postcondition violated: source %s still present and not removable: %v", src, err)
		}
	}
	if !fileExists(filepath.Join(dst, MetadataFile)) {
		// Usable but incomplete data; not a reason to fail the move.
		log.Warnw("job folder missing metadata record after move",
			logger.FieldPath, dst,
			logger.FieldFile, MetadataFile)
	}

	return dst, nil
}

// relocate renames src to dst, falling back to copy-and-remove when the
// rename crosses filesystem boundaries.
func relocate(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && linkErr.Err == syscall.EXDEV {
		if err := copyTree(src, dst); err != nil {
			return errors.Wrapf(err, "cross-device copy from %s to %s failed", src, dst)
		}
		if err := os.RemoveAll(src); err != nil {
			return errors.Wrapf(err, "failed to remove source %s after cross-device copy", src)
		}
		return nil
	}
	return errors.Wrapf(err, "failed to move %s to %s", src, dst)
}

// copyTree copies a directory tree preserving exact file bytes.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// countFiles counts regular files under dir, recursively. Unreadable
// entries count as zero rather than aborting the walk.
func countFiles(dir string) int {
	count := 0
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	return count
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
