package cleanup

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/akuntansi/swagger-cleanup/internal/config"
	"github.com/akuntansi/swagger-cleanup/internal/document"
	"github.com/akuntansi/swagger-cleanup/internal/files"
)

// noteFormat is appended to info.description on every run.
// Runs accumulate: a second run appends a second note.
const noteFormat = "\n\nNOTE: Unused endpoints have been removed based on frontend usage analysis performed on %s."

// Result describes a completed run.
type Result struct {
	// Removed holds the targets that were present and deleted, in removal order.
	Removed []string

	// Missing holds the targets that were not in the document.
	Missing []string

	// OriginalCount and FinalCount are the paths-mapping sizes before and
	// after removal.
	OriginalCount int
	FinalCount    int

	// BackupPath is where the pre-run copy of the document was written.
	BackupPath string

	// RanAt is the run timestamp used in the backup name, the description
	// note and the report.
	RanAt time.Time
}

// RemovedSet returns the removed paths as a lookup set.
func (r *Result) RemovedSet() map[string]bool {
	res := make(map[string]bool, len(r.Removed))
	for _, p := range r.Removed {
		res[p] = true
	}
	return res
}

// Cleaner removes the targeted endpoints from a swagger document.
type Cleaner struct {
	cfg    *config.Config
	groups []TargetGroup
	logger *slog.Logger

	// now is swapped in tests for deterministic backup names and dates.
	now func() time.Time
}

// New creates a Cleaner over the default removal list.
func New(cfg *config.Config, logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{
		cfg:    cfg,
		groups: DefaultTargets,
		logger: logger,
		now:    time.Now,
	}
}

// Run executes the pipeline: backup, parse, remove, annotate, rewrite,
// verify, report. Any failure after the backup was taken restores the
// document from the backup and is returned to the caller. A failure of the
// backup itself happens before any mutation, so nothing is restored.
func (c *Cleaner) Run() (*Result, error) {
	ranAt := c.now()

	backup := files.NewBackup(c.cfg.SpecFile, c.cfg.BackupDir, ranAt)
	c.logger.Info("creating backup", "path", backup.Path())
	if err := backup.Create(); err != nil {
		return nil, fmt.Errorf("creating backup: %w", err)
	}

	res, err := c.process(ranAt, backup.Path())
	if err != nil {
		c.logger.Error("cleanup failed, restoring original file", "error", err)
		if restoreErr := backup.Restore(); restoreErr != nil {
			return nil, fmt.Errorf("restore failed: %w (after: %v)", restoreErr, err)
		}
		return nil, err
	}

	c.logger.Info("cleanup complete",
		"removed", len(res.Removed),
		"backup", res.BackupPath,
		"report", c.cfg.ReportFile)

	return res, nil
}

func (c *Cleaner) process(ranAt time.Time, backupPath string) (*Result, error) {
	c.logger.Info("loading swagger document", "path", c.cfg.SpecFile)
	content, err := os.ReadFile(c.cfg.SpecFile)
	if err != nil {
		return nil, err
	}

	doc, err := document.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", c.cfg.SpecFile, err)
	}

	res := &Result{
		BackupPath:    backupPath,
		RanAt:         ranAt,
		OriginalCount: doc.PathCount(),
	}

	targets := AllPaths(c.groups)
	if doc.HasPaths() {
		for _, path := range targets {
			if doc.RemovePath(path) {
				c.logger.Info("removing unused endpoint", "path", path)
				res.Removed = append(res.Removed, path)
			} else {
				c.logger.Info("endpoint not found", "path", path)
				res.Missing = append(res.Missing, path)
			}
		}
	} else {
		c.logger.Warn("document has no paths section, nothing to remove")
		res.Missing = targets
	}
	res.FinalCount = doc.PathCount()

	c.logger.Info("endpoints removed",
		"count", len(res.Removed),
		"before", res.OriginalCount,
		"after", res.FinalCount)

	doc.AppendDescription(fmt.Sprintf(noteFormat, ranAt.Format("2006-01-02")))

	out, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}

	c.logger.Info("writing cleaned document", "path", c.cfg.SpecFile)
	if err := files.SaveFile(c.cfg.SpecFile, out); err != nil {
		return nil, fmt.Errorf("writing %s: %w", c.cfg.SpecFile, err)
	}

	if err := document.Verify(out); err != nil {
		return nil, fmt.Errorf("verifying cleaned document: %w", err)
	}

	if err := WriteReport(c.cfg.ReportFile, res, c.groups); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	c.logger.Info("report written", "path", c.cfg.ReportFile)

	return res, nil
}
