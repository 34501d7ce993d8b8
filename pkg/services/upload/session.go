// Package upload manages the lifecycle of a PDF upload session: collecting
// files into a preview batch, tracking which one is shown, and committing the
// batch to the report backend.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/fin-tools/report-atlas/pkg/adapters"
	"github.com/fin-tools/report-atlas/pkg/models/api"
	"github.com/fin-tools/report-atlas/pkg/models/domain"
)

// ErrNotPDF rejects uploads whose name does not end in ".pdf".
var ErrNotPDF = errors.New("only PDF files are accepted")

// ErrNoSession is returned when an upload or commit happens outside an open
// session.
var ErrNoSession = errors.New("no upload session is open")

// Uploader is the backend side of an upload session.
type Uploader interface {
	UploadFile(ctx context.Context, name string, r io.Reader) (api.UploadResult, error)
	CommitUploads(ctx context.Context, ids []string) (api.CommitResult, error)
}

// Session is one open upload batch. Entries keeps upload order; SelectedID is
// the entry currently previewed.
type Session struct {
	ID         string
	Entries    []domain.UploadEntry
	SelectedID string
}

// Navigation tells the caller where to go after a successful commit.
type Navigation string

const (
	// NavigateFile points at the single file that was just committed.
	NavigateFile Navigation = "file"
	// NavigateHistory points at the upload history when several files moved.
	NavigateHistory Navigation = "history"
)

// CommitOutcome is a successful commit plus the follow-up destination.
type CommitOutcome struct {
	Result domain.CommitResult
	Target Navigation
	FileID string
}

// File pairs an upload name with its content.
type File struct {
	Name   string
	Reader io.Reader
}

// FileResult records what happened to one file of a batch.
type FileResult struct {
	Name  string
	Entry domain.UploadEntry
	Err   error
}

// Manager owns the current session. It is not safe for concurrent use; each
// surface holds its own manager.
type Manager struct {
	uploader Uploader
	session  *Session
}

func NewManager(uploader Uploader) *Manager {
	return &Manager{uploader: uploader}
}

// Open starts a fresh session, discarding any previous one.
func (m *Manager) Open() *Session {
	m.session = &Session{ID: uuid.NewString()}
	return m.session
}

// Close drops the current session without committing it. Files already
// uploaded stay in the backend's preview area.
func (m *Manager) Close() {
	m.session = nil
}

// Session returns the open session, or nil when none is open.
func (m *Manager) Session() *Session {
	return m.session
}

// Select marks an already uploaded entry as the previewed one.
func (m *Manager) Select(id string) error {
	if m.session == nil {
		return ErrNoSession
	}

	for _, e := range m.session.Entries {
		if e.ID == id {
			m.session.SelectedID = id
			return nil
		}
	}

	return fmt.Errorf("upload %q is not part of the current session", id)
}

// UploadOne validates and uploads a single file into the open session. The
// first successful upload becomes the selected entry. A failed upload leaves
// the session untouched.
func (m *Manager) UploadOne(ctx context.Context, name string, r io.Reader) (domain.UploadEntry, error) {
	if m.session == nil {
		return domain.UploadEntry{}, ErrNoSession
	}

	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return domain.UploadEntry{}, fmt.Errorf("%q: %w", name, ErrNotPDF)
	}

	result, err := m.uploader.UploadFile(ctx, name, r)
	if err != nil {
		return domain.UploadEntry{}, fmt.Errorf("failed to upload %q: %w", name, err)
	}

	entry := adapters.MapUploadResultApiToDomain(result)
	m.session.Entries = append(m.session.Entries, entry)
	if m.session.SelectedID == "" {
		m.session.SelectedID = entry.ID
	}

	return entry, nil
}

// HandleFiles uploads a batch strictly in order, one file at a time. A
// failure is recorded and the batch continues; the per-file outcomes come
// back in input order.
func (m *Manager) HandleFiles(ctx context.Context, files []File) []FileResult {
	results := make([]FileResult, 0, len(files))

	for _, f := range files {
		entry, err := m.UploadOne(ctx, f.Name, f.Reader)
		results = append(results, FileResult{Name: f.Name, Entry: entry, Err: err})
	}

	return results
}

// Commit moves the session's uploads into the committed dataset and closes
// the session. A single-file session navigates to that file, larger ones to
// the history view. On failure the session stays open so the user can retry.
func (m *Manager) Commit(ctx context.Context) (CommitOutcome, error) {
	if m.session == nil {
		return CommitOutcome{}, ErrNoSession
	}
	if len(m.session.Entries) == 0 {
		return CommitOutcome{}, errors.New("nothing to commit: the session has no uploads")
	}

	ids := make([]string, 0, len(m.session.Entries))
	for _, e := range m.session.Entries {
		ids = append(ids, e.ID)
	}

	result, err := m.uploader.CommitUploads(ctx, ids)
	if err != nil {
		return CommitOutcome{}, fmt.Errorf("failed to commit uploads: %w", err)
	}

	outcome := CommitOutcome{
		Result: adapters.MapCommitResultApiToDomain(result),
		Target: NavigateHistory,
	}
	if len(ids) == 1 {
		outcome.Target = NavigateFile
		outcome.FileID = ids[0]
	}

	m.session = nil

	return outcome, nil
}
