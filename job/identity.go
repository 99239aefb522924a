// Package job models one job application's persistent state: its identity,
// the phase directory that currently owns it, its metadata record, and its
// append-only log. The directory tree under the jobs root is the durable
// store; a job folder's location encodes its lifecycle phase.
package job

import (
	"strings"
	"time"
)

// UnknownToken substitutes for any name component that sanitizes to nothing,
// so folder names stay parseable.
const UnknownToken = "Unknown"

// timestampLayout renders PostedAt to the second, filesystem-safe.
const timestampLayout = "20060102-150405"

// Identity identifies one job posting. It is a value object: computed once
// when the folder is created and never mutated afterwards.
type Identity struct {
	Company  string
	Title    string
	PostedAt time.Time
	JobID    string
}

// Slug maps arbitrary text to an alphanumeric-plus-underscore token.
// Runs of any other characters collapse to a single underscore; leading and
// trailing separators are dropped. Text that sanitizes to nothing becomes
// UnknownToken.
func Slug(text string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	if b.Len() == 0 {
		return UnknownToken
	}
	return b.String()
}

// FolderName derives the deterministic folder name for an identity:
//
//	slug(company).slug(title).20060102-150405.jobID
//
// The job id is appended raw and unbounded, so two identities with different
// ids never collide.
//
// The timestamp carries no zone, so PostedAt is normalized to local time
// before formatting; ParseFolderName reads it back in the same zone, keeping
// the round trip instant-preserving regardless of the source zone.
func FolderName(id Identity) string {
	return strings.Join([]string{
		Slug(id.Company),
		Slug(id.Title),
		id.PostedAt.Local().Format(timestampLayout),
		id.JobID,
	}, ".")
}

// ParseFolderName is the inverse of FolderName. The job id may itself
// contain dots, so only the first three separators are structural.
// Malformed names report ok=false rather than an error: unparseable folders
// under a phase directory are a normal condition (hand-made dirs, archives).
func ParseFolderName(name string) (Identity, bool) {
	parts := strings.SplitN(name, ".", 4)
	if len(parts) != 4 {
		return Identity{}, false
	}
	if parts[0] == "" || parts[1] == "" || parts[3] == "" {
		return Identity{}, false
	}
	postedAt, err := time.ParseInLocation(timestampLayout, parts[2], time.Local)
	if err != nil {
		return Identity{}, false
	}
	return Identity{
		Company:  parts[0],
		Title:    parts[1],
		PostedAt: postedAt,
		JobID:    parts[3],
	}, true
}
