// Package search implements the search-augmentation pipeline of the coach:
//
//   - TriggerClassifier decides whether a message warrants a live search
//   - Ranker maps raw provider hits to trust-ranked results
//   - Cache keeps ranked result sets for an hour, keyed by (query, count)
//   - Searcher ties provider, ranker and cache together
//   - Serper is the HTTP provider for google.serper.dev
//
// # Example
//
//	provider := search.NewSerper(os.Getenv("SERPER_API_KEY"))
//	s := search.New(provider)
//	rs, err := s.Search(ctx, "latest sleep guidelines", 5)
//
// Implement core.SearchProvider to plug in another backend.
package search
