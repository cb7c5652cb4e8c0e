// Package transport turns logical API calls into HTTP exchanges with the
// Chroma API and interprets the responses.
//
// # Overview
//
// A call goes through two steps:
//
//  1. Build combines a Call (path, method, path parameters, query, encoded
//     body, extra headers) with the Config resolved for this call (base URL
//     and session token) into a Request. Build performs no I/O.
//  2. A Dispatcher executes the Request. Send returns the raw status,
//     headers and body; Retrieve also decodes the body into a message type;
//     Upload and UploadStream stream the body while reporting progress.
//
// Every body is encoded with the codec package and announced as
// codec.MediaType in both Content-Type and Accept. The session token is sent
// verbatim in the Authorization header, and the header is omitted when there
// is no token.
//
// # Error Handling
//
// The dispatcher is the only place where transport failures are translated:
//
//   - ErrUnreachable: no HTTP response was obtained (DNS, refused, reset).
//   - *StatusError: a response arrived but did not carry a message. Two
//     refinements unwrap to it: *UnauthorizedError (401, with the Location
//     redirect target) and *RateLimitedError (429, with Retry-After).
//   - codec.ErrMalformedMessage: the body could not be decoded.
//
// When the context is cancelled the context's error is returned as is.
//
// Nothing in this package retries.
package transport
