package requestlog

// Logger is the minimal interface for recording request entries.
// The engine accepts this interface to log exchanges, so it works with
// any implementation that can record entries, whether an in-memory
// store or something persistent.
type Logger interface {
	Log(entry *Entry)
}

// Store defines the interface for request history storage.
// Store embeds Logger, so any Store implementation can be used where
// Logger is expected.
type Store interface {
	Logger

	// Get retrieves a log entry by ID.
	Get(id string) *Entry

	// List returns log entries newest first, optionally filtered.
	List(filter *Filter) []*Entry

	// Clear removes all log entries.
	Clear()

	// Count returns the number of log entries.
	Count() int
}

// Filter defines criteria for filtering request logs. Zero-valued
// fields are ignored.
type Filter struct {
	// Method filters by HTTP method.
	Method string

	// Path filters by path prefix.
	Path string

	// Status filters by response status code.
	Status int

	// Overridden filters by whether a control header shaped the
	// response.
	Overridden *bool

	// Limit is the maximum number of entries to return.
	Limit int

	// Offset is the number of entries to skip.
	Offset int
}
