package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sadopc/taskxp/internal/model"
)

var csvHeader = []string{"ID", "Title", "Category", "Priority", "Completed", "Created", "Due", "Tags", "Repository", "Commit", "PR"}

func ToCSV(tasks []model.Task, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	// Header
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, t := range tasks {
		link := linkOf(t)
		row := []string{
			t.ID,
			t.Title,
			string(t.Category),
			string(t.Priority),
			strconv.FormatBool(t.Completed),
			t.CreatedAt.Local().Format(time.RFC3339),
			formatDue(t.DueDate),
			strings.Join(t.Tags, ";"),
			link.RepoName,
			link.CommitID,
			link.PRNumber,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func linkOf(t model.Task) model.GitHubLink {
	if t.GitHubLink == nil {
		return model.GitHubLink{}
	}
	return *t.GitHubLink
}

func formatDue(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Local().Format("2006-01-02")
}
