package scan

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"

	"github.com/mhermans/dirmimic/internal/platform"
	"github.com/mhermans/dirmimic/pkg/identity"
	"github.com/mhermans/dirmimic/pkg/logging"
	"github.com/mhermans/dirmimic/pkg/models"
	"github.com/mhermans/dirmimic/pkg/storage"
)

// Options configure a directory scan
type Options struct {
	// BufferSize is the read buffer used for full fingerprints
	BufferSize int

	// ShowProgress renders a progress bar on stderr while
	// fingerprinting; only useful at levels 2 and 3
	ShowProgress bool
}

// Scanner walks a storage backend and produces the file records of the
// tree at a given identity level
type Scanner struct {
	backend storage.Backend
	level   models.IdentityLevel
	logger  logging.Logger
	opts    Options
}

// NewScanner creates a scanner for a backend at an identity level
func NewScanner(backend storage.Backend, level models.IdentityLevel, logger logging.Logger, opts Options) (*Scanner, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("invalid identity level: %d", level)
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	if opts.BufferSize < 4096 {
		opts.BufferSize = 65536
	}

	return &Scanner{
		backend: backend,
		level:   level,
		logger:  logger,
		opts:    opts,
	}, nil
}

// Scan lists the tree and builds one record per regular file. Files that
// cannot be read for fingerprinting are reported as warnings and skipped;
// the scan keeps going.
func (s *Scanner) Scan(ctx context.Context) ([]models.FileRecord, error) {
	infos, err := s.backend.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory: %w", err)
	}

	var files []storage.FileInfo
	for _, info := range infos {
		if info.IsDir || info.RelativePath == "" {
			continue
		}
		files = append(files, info)
	}

	var bar *pb.ProgressBar
	if s.opts.ShowProgress && s.level >= models.LevelSampleHash && len(files) > 0 {
		bar = pb.New(len(files)).SetWriter(os.Stderr)
		bar.Start()
		defer bar.Finish()
	}

	records := make([]models.FileRecord, 0, len(files))
	for _, info := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		record, err := s.record(ctx, info)
		if err != nil {
			s.logger.Warn(ctx, "skipping unreadable file", logging.Fields{
				"path":  info.RelativePath,
				"error": err.Error(),
			})
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", info.RelativePath, err)
			if bar != nil {
				bar.Increment()
			}
			continue
		}

		records = append(records, record)
		if bar != nil {
			bar.Increment()
		}
	}

	s.logger.Debug(ctx, "scan complete", logging.Fields{
		"root":  s.backend.Root(),
		"files": len(records),
		"level": int(s.level),
	})

	return records, nil
}

// record builds the FileRecord for one listed file, computing the
// fingerprints the scan level requires
func (s *Scanner) record(ctx context.Context, info storage.FileInfo) (models.FileRecord, error) {
	folder, filename := platform.SplitRel(info.RelativePath)

	record := models.FileRecord{
		Folder:   folder,
		Filename: filename,
		Size:     info.Size,
	}

	if s.level < models.LevelSampleHash {
		return record, nil
	}

	file, err := s.backend.Open(ctx, info.RelativePath)
	if err != nil {
		return models.FileRecord{}, err
	}
	defer file.Close()

	// Levels 2 and 3 both carry the sample fingerprint; level 3 adds
	// the full-stream digest on top
	record.SampleSHA1, err = identity.SampleSHA1(file, info.Size)
	if err != nil {
		return models.FileRecord{}, err
	}

	if s.level == models.LevelFullHash {
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return models.FileRecord{}, err
		}
		record.FullSHA1, err = identity.FullSHA1(file, s.opts.BufferSize)
		if err != nil {
			return models.FileRecord{}, err
		}
	}

	return record, nil
}
