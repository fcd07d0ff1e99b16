// Package csync provides goroutine-safe generic collections.
//
// The dialog service keeps its correlation table in a Map and the dialog host
// keeps its open-list in a Slice. Both guard their data with a RWMutex, so
// status readers on other goroutines can take snapshots while the owner
// mutates.
//
// Example usage:
//
//	pending := csync.NewMap[string, func(any)]()
//	pending.Set(id, complete)
//	if complete, ok := pending.Take(id); ok {
//		complete(value) // only the first Take wins
//	}
//
//	open := csync.NewSlice[*entry]()
//	open.Append(e)
//	top, ok := open.Last()
package csync
