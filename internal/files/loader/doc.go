// Package loader reads individual game table files.
//
// The loader package is responsible for:
//   - Resolving a table location for a locale under the configured root
//   - Reading a file, checking it is well-formed JSON and validating it
//     against an optional gamedata.Schema
//   - Starting the same read on its own goroutine (LoadTableAsync)
//
// Nothing is cached: every call reads and parses the file again. Errors wrap
// gamedata.ErrFileAccess, gamedata.ErrParse or gamedata.ErrValidation
// together with the underlying cause and are never swallowed here.
package loader
