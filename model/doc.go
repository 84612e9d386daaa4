// Package model defines the provider‑agnostic abstractions for interacting
// with language models and the ChatSession handle built on top of them.
//
// Core goals:
//   - Unify streaming + non‑streaming generation behind a single interface
//   - Keep request/response shapes minimal and transport independent
//   - Make conversational state explicit (ChatSession with Send and Reset)
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (OpenAI, Anthropic) implement the Model interface from this
// package so the coach remains decoupled from vendor SDKs.
package model
