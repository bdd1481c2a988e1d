// Package requestlog provides types and a store for capturing echoed
// request/response exchanges for user inspection and debugging.
//
// This package serves echod users who need to see what requests came
// in, which control headers were applied, and what responses went
// back. It is distinct from operational logging (which uses log/slog
// for platform debugging).
//
// # Core Types
//
// Entry is the central type representing a captured exchange. Headers
// are kept as an ordered list of HeaderPair so that repeated names and
// their wire order survive inspection.
//
// # Store Interface
//
// Store defines the interface for request history storage, supporting:
//   - Recording new entries
//   - Querying by ID or with filters
//   - Clearing history
//
// # Usage
//
// The engine creates Entry instances and passes them to a Store
// implementation:
//
//	store := requestlog.NewMemoryStore(1000)
//	entry := &requestlog.Entry{
//	    Method: "GET",
//	    Path:   "/api/users",
//	    // ...
//	}
//	store.Log(entry)
//
// # Package Design
//
// This is a leaf package with no internal dependencies, allowing it to
// be imported by any package without creating import cycles.
package requestlog
