package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/taskxp/internal/model"
)

type jsonExport struct {
	ExportedAt string     `json:"exported_at"`
	Count      int        `json:"count"`
	Completed  int        `json:"completed"`
	Tasks      []jsonTask `json:"tasks"`
}

type jsonTask struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Priority  string   `json:"priority"`
	Completed bool     `json:"completed"`
	CreatedAt string   `json:"created_at"`
	DueDate   string   `json:"due_date,omitempty"`
	Tags      []string `json:"tags"`
	Repo      string   `json:"repo,omitempty"`
	Commit    string   `json:"commit,omitempty"`
	PR        string   `json:"pr,omitempty"`
}

func ToJSON(tasks []model.Task, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(tasks),
		Tasks:      []jsonTask{},
	}

	for _, t := range tasks {
		if t.Completed {
			export.Completed++
		}
		link := linkOf(t)
		tags := t.Tags
		if tags == nil {
			tags = []string{}
		}
		export.Tasks = append(export.Tasks, jsonTask{
			ID:        t.ID,
			Title:     t.Title,
			Category:  string(t.Category),
			Priority:  string(t.Priority),
			Completed: t.Completed,
			CreatedAt: t.CreatedAt.Local().Format(time.RFC3339),
			DueDate:   formatDue(t.DueDate),
			Tags:      tags,
			Repo:      link.RepoName,
			Commit:    link.CommitID,
			PR:        link.PRNumber,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
