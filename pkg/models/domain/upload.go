package domain

// UploadEntry is one successfully uploaded file within the current session.
type UploadEntry struct {
	ID         string
	Name       string
	PreviewURL string
}

// CommitResult reports what the backend did with a committed batch.
type CommitResult struct {
	Moved   int
	Missing []string
}
