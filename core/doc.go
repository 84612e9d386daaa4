// Package core provides the foundational domain types and contracts used by
// the wellness coach. It defines:
//
//   - Exchanges (one user message plus the coach reply)
//   - Goals, daily tracking and the user profile
//   - Search results and ranked result sets
//   - Snapshots (the persisted session bundle)
//   - Small interfaces for chat sessions, search providers and snapshot stores
//
// Implementation concerns (model SDKs, HTTP search, persistence backends,
// orchestration) live in other packages and depend on these contracts, which
// keeps wiring decisions in one place.
package core
