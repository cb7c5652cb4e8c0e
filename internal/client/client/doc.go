// Package client exposes the Chroma API as typed domain calls.
//
// # Overview
//
// The package provides:
//  1. The Client interface: album, photo and user operations returning
//     plain values from the models package.
//  2. HTTPClient, its implementation on top of the transport package. Each
//     call resolves the base URL and session token through a
//     transport.ConfigResolver, builds the request, and dispatches it.
//  3. UpdateMask, which turns a partial object into the field paths sent
//     with album updates.
//  4. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     CLI's SQLite database, applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures are mapped to sentinel errors that callers can match
// with errors.Is: ErrUnauthorized, ErrForbidden, ErrNotFound,
// ErrRateLimited and ErrUnavailable. The original transport error stays in
// the chain, so errors.As still reaches *transport.UnauthorizedError for its
// redirect target or *transport.RateLimitedError for its delay.
//
// Lookups by id (GetAlbum, GetPhoto, GetUser) return nil and no error when
// the API answers 404.
//
// Nothing is retried or cached here; every call goes to the API.
package client
