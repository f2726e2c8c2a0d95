package domain

// ExistingState describes what was found at an artifact path before syncing.
type ExistingState string

// Existing artifact states.
const (
	// ExistingAbsent means no file exists at the path.
	ExistingAbsent ExistingState = "absent"

	// ExistingPresent means the file was read successfully.
	ExistingPresent ExistingState = "present"

	// ExistingUnreadable means something exists at the path but reading it
	// failed. Sync treats this like absent and writes.
	ExistingUnreadable ExistingState = "unreadable"
)

// Existing is the optional result of reading the current artifact.
type Existing struct {
	State ExistingState

	// Content holds the file bytes when State is ExistingPresent.
	Content []byte

	// Err holds the read error when State is ExistingUnreadable.
	Err error
}

// Equal reports whether the artifact is present and byte-identical to content.
func (e Existing) Equal(content []byte) bool {
	return e.State == ExistingPresent && string(e.Content) == string(content)
}

// SyncResult is the outcome of syncing one variant to disk.
type SyncResult struct {
	// Theme identifies the variant.
	Theme Theme `json:"theme"`

	// Path is the artifact path.
	Path string `json:"path"`

	// Changed is true when the fetched content differs from what was on disk.
	Changed bool `json:"changed"`

	// Written is true when the file was actually written. It differs from
	// Changed only in dry-run mode or when the write failed.
	Written bool `json:"written"`

	// Bytes is the size of the fetched document.
	Bytes int `json:"bytes"`

	// Previous is the state of the artifact before the sync.
	Previous ExistingState `json:"previous"`

	// Error is the write error message, if any.
	Error string `json:"error,omitempty"`

	// Err is the write error, if any.
	Err error `json:"-"`
}
