package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/shenikar/air_crash_atlas/internal/models"
	"github.com/sirupsen/logrus"
)

// FileSource загружает набор данных из JSON-файла
type FileSource struct {
	path   string
	logger *logrus.Logger
}

// NewFileSource создает источник для файла по пути path
func NewFileSource(path string, logger *logrus.Logger) *FileSource {
	return &FileSource{path: path, logger: logger}
}

// Load читает и нормализует весь файл
func (s *FileSource) Load(ctx context.Context) ([]models.CrashRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("dataset: failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	records, report, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: failed to load %s: %w", s.path, err)
	}

	s.logger.WithFields(logrus.Fields{
		"path":                s.path,
		"total":               report.Total,
		"loaded":              report.Loaded,
		"skipped":             report.Skipped,
		"dropped_coordinates": report.DroppedCoordinates,
	}).Info("Crash dataset decoded")
	return records, nil
}
