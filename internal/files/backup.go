package files

import (
	"fmt"
	"path/filepath"
	"time"
)

// backupNameFormat is the timestamp layout in backup file names.
const backupNameFormat = "20060102_150405"

// Backup protects a swagger document against a failed rewrite.
// Create is called once before any mutation; Restore copies the backup back
// over the source. The backup file itself is never modified afterwards and
// is deliberately left on disk as an audit trail.
type Backup struct {
	srcPath string
	path    string
}

// NewBackup computes the backup location for srcPath inside dir,
// named swagger_backup_<YYYYMMDD_HHMMSS>.yaml.
func NewBackup(srcPath, dir string, now time.Time) *Backup {
	name := fmt.Sprintf("swagger_backup_%s.yaml", now.Format(backupNameFormat))
	return &Backup{
		srcPath: srcPath,
		path:    filepath.Join(dir, name),
	}
}

// Path returns the backup file location.
func (b *Backup) Path() string {
	return b.path
}

// Create copies the source file to the backup location.
func (b *Backup) Create() error {
	return CopyFile(b.srcPath, b.path)
}

// Restore copies the backup back over the source file.
func (b *Backup) Restore() error {
	return CopyFile(b.path, b.srcPath)
}
