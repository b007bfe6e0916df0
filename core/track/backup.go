package track

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"classtrack/core/user"
)

// BackupVersion is written into every export's metadata block.
const BackupVersion = "1.0"

var (
	// ErrUnreadableBackup indicates the file is not valid JSON at all.
	ErrUnreadableBackup = errors.New("could not read file, it might be corrupted")
	// ErrInvalidBackup indicates valid JSON that is not a backup document.
	ErrInvalidBackup = errors.New("invalid file format")
)

type (
	BackupMetadata struct {
		Version    string       `json:"version"`
		ExportedAt string       `json:"exportedAt"`
		User       string       `json:"user"`
		Program    user.Program `json:"program"`
		Subject    user.Subject `json:"subject"`
	}

	BackupData struct {
		Semesters []Semester     `json:"semesters"`
		Courses   []Course       `json:"courses"`
		Sessions  []ClassSession `json:"sessions"`
	}

	// Backup is the export file document: a metadata block plus the owning
	// profile's already-scoped collections.
	Backup struct {
		Metadata BackupMetadata `json:"metadata"`
		Data     BackupData     `json:"data"`
	}
)

// Export snapshots the current profile's scoped collections.
func (svc *Service) Export(usr user.User, now time.Time) Backup {
	return Backup{
		Metadata: BackupMetadata{
			Version:    BackupVersion,
			ExportedAt: now.UTC().Format(time.RFC3339),
			User:       usr.Name,
			Program:    usr.Program,
			Subject:    usr.Subject,
		},
		Data: BackupData{
			Semesters: svc.Semesters(),
			Courses:   svc.Courses(),
			Sessions:  svc.Sessions(),
		},
	}
}

// Marshal renders the document with two-space indentation, the fixed export
// file style.
func (b Backup) Marshal() ([]byte, error) {
	raw, err := json.MarshalIndent(b, "", "  ")
	return raw, errors.Wrap(err, "encoding backup")
}

// BackupFilename returns the export filename for the given day.
func BackupFilename(now time.Time) string {
	return fmt.Sprintf("honours-tracker-backup-%s.json", now.Format("2006-01-02"))
}

// ParseBackup validates and decodes a backup document. A document is valid
// only if it carries a data block whose semesters field is an array; anything
// else is rejected before any merge is attempted, leaving the store
// untouched.
func ParseBackup(raw []byte) (BackupData, error) {
	var doc struct {
		Data *struct {
			Semesters json.RawMessage `json:"semesters"`
			Courses   json.RawMessage `json:"courses"`
			Sessions  json.RawMessage `json:"sessions"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return BackupData{}, ErrUnreadableBackup
	}
	if doc.Data == nil || !isJSONArray(doc.Data.Semesters) {
		return BackupData{}, ErrInvalidBackup
	}

	var data BackupData
	if err := json.Unmarshal(doc.Data.Semesters, &data.Semesters); err != nil {
		return BackupData{}, ErrInvalidBackup
	}
	// courses/sessions blocks that are missing or not arrays merge as empty
	// rather than invalidating the whole document
	if isJSONArray(doc.Data.Courses) {
		if err := json.Unmarshal(doc.Data.Courses, &data.Courses); err != nil {
			return BackupData{}, ErrInvalidBackup
		}
	}
	if isJSONArray(doc.Data.Sessions) {
		if err := json.Unmarshal(doc.Data.Sessions, &data.Sessions); err != nil {
			return BackupData{}, ErrInvalidBackup
		}
	}
	return data, nil
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
