// Package testutil contains helper fakes and builders used across tests to
// reduce boilerplate when wiring a coach (scripted chats, a counting search
// provider, a manual clock, snapshot builders). They are not intended for
// production usage.
package testutil
