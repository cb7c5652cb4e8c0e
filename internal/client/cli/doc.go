// Package cli provides the interactive Chroma command-line client.
//
// It wires configuration, the local session store, the API client and an
// interactive REPL. The user logs in by pasting a Koala session id, which is
// validated once and kept in the local database; every later command reads
// it from there.
//
// Commands:
//   - login / logout / status
//   - albums, album <id>, mkalbum, rename <id>, publish <id>, cover <id> <photoId>, rmalbum <id>
//   - photos <albumId>, photo <id> [thumbnail|preview|original]
//   - upload <albumId> <file...>, rmphoto <id...>
//   - users, user <id>
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
