// Package session holds the per-user coaching state (profile, goals, daily
// tracking) and the snapshot stores that persist it.
//
// Stores implement core.SnapshotStore. FileStore writes one JSON document per
// session; SQLiteStore keeps snapshots in a single database file. Add other
// backends without changing calling code – only the wiring layer decides
// which implementation to instantiate.
package session
