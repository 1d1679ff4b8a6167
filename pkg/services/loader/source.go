package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
)

// FileSource loads transactions from a CSV or XLSX file on disk,
// dispatching on the file extension. Every Load re-reads the file in
// full; there is no incremental path.
type FileSource struct {
	Path string
}

func (s *FileSource) Load(ctx context.Context) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(s.Path), ".xlsx") {
		return ReadXLSX(s.Path)
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}
