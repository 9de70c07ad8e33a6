package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/yunpil/youtube/internal/export"
	"github.com/yunpil/youtube/internal/models"
)

// writeOutputs stores the markdown and docx renderings side by side.
func (p *implProcessor) writeOutputs(ctx context.Context, name string, res *models.GenerationResult) (string, string, error) {
	if err := os.MkdirAll(p.paths.Output, 0755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}

	mdPath := filepath.Join(p.paths.Output, name+".md")
	if err := os.WriteFile(mdPath, []byte(export.Markdown(res)), 0644); err != nil {
		return "", "", fmt.Errorf("write %s: %w", mdPath, err)
	}

	docxPath := filepath.Join(p.paths.Output, name+".docx")
	if err := export.WriteDocx(res, docxPath); err != nil {
		// Markdown is already there; docx is a convenience copy.
		p.logger.Warn(ctx, "Failed to write %s: %v", docxPath, err)
		docxPath = ""
	}
	return mdPath, docxPath, nil
}

// moveToArchived moves the source transcript out of the watched folder so it
// is not picked up again. An existing file of the same name is not overwritten.
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := uniquePath(filepath.Join(p.paths.Archived, filepath.Base(path)))
	p.logger.Debug(ctx, "Archiving: %s -> %s", path, dest)

	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}

func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	for i := 1; ; i++ {
		candidate := base + "-" + strconv.Itoa(i) + ext
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
