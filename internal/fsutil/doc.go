// Package fsutil writes files with atomic-replace semantics.
//
// Content is written to a sibling file (see TempPath), flushed and synced,
// then renamed over the target.
// Readers of the target observe either the previous complete content or
// the new complete content, never a partial write.
//
// The guarantee depends on rename being atomic, which holds only when the
// sibling and the target are on the same filesystem. The sibling is always
// created next to the target for that reason.
package fsutil
