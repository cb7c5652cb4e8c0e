// Package common holds names shared by the CLI, the gateway and the
// services: cookie names, metadata keys and header names.
package common

const (
	// SessionCookieName is the cookie holding the Koala session token.
	SessionCookieName = "sessionid"
	// RoleCookieName is the cookie holding the signed role claim.
	RoleCookieName = "role"

	// SessionLoginParam is the query parameter carrying a fresh session id
	// on the login-completion endpoint.
	SessionLoginParam = "session_id"

	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-Id"
)

// Keys of the local metadata store.
const (
	MetadataKeySession = "sessionid"
	MetadataKeyRole    = "role"
)
