package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ExportTabToMarkdown writes the current tab's rows to a markdown table in
// the working directory. Returns the generated filename.
func ExportTabToMarkdown(project, tab string, header []string, rows [][]string) (string, error) {
	timestamp := time.Now().Format("2006-01-02")
	base := strings.TrimSuffix(filepath.Base(project), filepath.Ext(project))
	safeTab := strings.ToLower(strings.ReplaceAll(tab, " ", "-"))
	filename := fmt.Sprintf("%s-%s-%s.md", base, safeTab, timestamp)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s — %s\n\n", base, tab))
	sb.WriteString(fmt.Sprintf("**Rows:** %d\n", len(rows)))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	sb.WriteString("| " + strings.Join(header, " | ") + " |\n")
	sb.WriteString("|" + strings.Repeat("---|", len(header)) + "\n")
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = strings.ReplaceAll(cell, "|", "\\|")
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	if err := os.WriteFile(filename, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write markdown file: %w", err)
	}

	return filename, nil
}

// ExportDatabaseBackup copies the current project database to a backup file
func ExportDatabaseBackup(currentDBPath string) (string, error) {
	timestamp := time.Now().Format("2006-01-02-150405")
	baseName := strings.TrimSuffix(filepath.Base(currentDBPath), filepath.Ext(currentDBPath))
	backupFilename := fmt.Sprintf("%s-backup-%s.db", baseName, timestamp)

	src, err := os.Open(currentDBPath)
	if err != nil {
		return "", fmt.Errorf("failed to open database: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(backupFilename)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to copy database: %w", err)
	}

	return backupFilename, nil
}
