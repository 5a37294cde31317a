package scanner

import (
	"path/filepath"
	"time"

	"github.com/vvka-141/gamedata/internal/checksum"
	"github.com/vvka-141/gamedata/internal/files/filesystem"
)

// FileRecord describes one scanned file.
type FileRecord struct {
	Path        string
	Name        string
	Missing     bool
	Err         error
	SizeBytes   int64
	Checksum    string // normalized
	ChecksumRaw string
	ModifiedAt  time.Time
}

// Scanner reads files and computes their checksums.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided calculator and fsProvider are also thread-safe.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new file scanner with the given checksum calculator.
// Uses OS filesystem by default.
// Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if calculator or fsProvider is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
	}
}

// ScanFiles returns one record per path, in the order given.
// A path that cannot be stat'ed or read is marked Missing with the cause in Err.
func (s *Scanner) ScanFiles(paths []string) []FileRecord {
	records := make([]FileRecord, 0, len(paths))
	for _, p := range paths {
		records = append(records, s.scanFile(p))
	}
	return records
}

func (s *Scanner) scanFile(path string) FileRecord {
	record := FileRecord{Path: path, Name: filepath.Base(path)}

	info, err := s.fsProvider.Stat(path)
	if err != nil {
		record.Missing = true
		record.Err = err
		return record
	}

	content, err := s.fsProvider.ReadFile(path)
	if err != nil {
		record.Missing = true
		record.Err = err
		return record
	}

	record.SizeBytes = int64(len(content))
	record.ModifiedAt = info.ModTime()
	record.Checksum = s.calculator.CalculateNormalized(content)
	record.ChecksumRaw = s.calculator.CalculateRaw(content)
	return record
}
