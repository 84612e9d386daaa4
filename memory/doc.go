// Package memory contains the bounded conversation log used to give the
// validator and the coach short-term continuity. Only the most recent
// exchanges are kept; the oldest are evicted first.
package memory
