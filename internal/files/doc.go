// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - loader: Path resolution and single-table reads (read, parse, validate)
//   - scanner: Size, modification time and checksums of table files
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/gamedata/internal/files/filesystem"
//	    "github.com/vvka-141/gamedata/internal/files/loader"
//	)
//
//	resolver, err := loader.NewResolver(cfg.RootPath)
//	l := loader.NewLoader(filesystem.NewOSFileSystem(), logger)
//
//	path := resolver.ResolvePath(gamedata.OriginalLocale, gamedata.TableRange.Location())
//	ranges, err := loader.LoadTable(l, path, schemas.Range)
//
// Fan-out across locales and aggregation across table kinds live in
// internal/services.
package files
