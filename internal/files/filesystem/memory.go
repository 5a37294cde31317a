package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	content []byte
	readErr error
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Reads may run concurrently with each other and with AddFile.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memoryFile // map of absolute path -> file
	root  string                 // root directory path
	reads map[string]int
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// Relative paths passed to any method are resolved against root.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
		reads: make(map[string]int),
	}
	mfs.files[root] = newDirEntry(root)
	return mfs
}

func newDirEntry(dir string) *memoryFile {
	return &memoryFile{
		info: &memoryFileInfo{
			name:    path.Base(dir),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.abs(filePath)
	contentBytes := []byte(content)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.files[absPath] = &memoryFile{
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: modTime,
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// SetReadError makes ReadFile on filePath fail with err while Stat still
// succeeds, which simulates an unreadable file.
func (mfs *MemoryFileSystem) SetReadError(filePath string, err error) {
	absPath := mfs.abs(filePath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	file, exists := mfs.files[absPath]
	if !exists {
		file = &memoryFile{info: &memoryFileInfo{name: path.Base(absPath), mode: 0}}
		mfs.files[absPath] = file
		mfs.ensureDirectoriesExist(absPath)
	}
	file.readErr = err
}

// Reads reports how many times ReadFile was called for filePath.
func (mfs *MemoryFileSystem) Reads(filePath string) int {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return mfs.reads[mfs.abs(filePath)]
}

// ensureDirectoriesExist creates directory entries for all parent directories.
// Callers hold mu.
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}
	mfs.files[dir] = newDirEntry(dir)
	mfs.ensureDirectoriesExist(dir)
}

// abs resolves filePath against the filesystem root.
func (mfs *MemoryFileSystem) abs(filePath string) string {
	filePath = filepath.ToSlash(filePath)
	if strings.HasPrefix(filePath, "/") {
		return path.Clean(filePath)
	}
	return path.Join(mfs.root, filePath)
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.abs(filePath)

	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	mfs.reads[absPath]++
	file, exists := mfs.files[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if file.info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fmt.Errorf("is a directory")}
	}
	if file.readErr != nil {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: file.readErr}
	}

	out := make([]byte, len(file.content))
	copy(out, file.content)
	return out, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.abs(statPath)

	mfs.mu.RLock()
	file, exists := mfs.files[absPath]
	mfs.mu.RUnlock()

	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return file.info, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
