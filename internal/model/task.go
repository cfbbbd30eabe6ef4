package model

import (
	"regexp"
	"slices"
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
	CategoryDesign   Category = "design"
	CategoryMeeting  Category = "meeting"
	CategoryOther    Category = "other"
)

var Categories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryStudy,
	CategoryFrontend,
	CategoryBackend,
	CategoryDesign,
	CategoryMeeting,
	CategoryOther,
}

// GitHubLink is opaque metadata attached by hand. Empty fields are absent.
type GitHubLink struct {
	RepoName string `json:"repoName,omitempty"`
	CommitID string `json:"commitId,omitempty"`
	PRNumber string `json:"prNumber,omitempty"`
}

// HasActivity reports whether the link points at a commit or a pull request.
func (l *GitHubLink) HasActivity() bool {
	return l != nil && (l.CommitID != "" || l.PRNumber != "")
}

var repoURLPattern = regexp.MustCompile(`github\.com/([^/]+/[^/]+)`)

// RepoNameFromURL extracts "owner/repo" from a github.com URL. Anything
// else is returned unchanged.
func RepoNameFromURL(s string) string {
	m := repoURLPattern.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return strings.TrimSuffix(m[1], ".git")
}

type Task struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	CodeSnippet string      `json:"codeSnippet,omitempty"`
	Priority    Priority    `json:"priority"`
	Category    Category    `json:"category"`
	Completed   bool        `json:"completed"`
	CreatedAt   time.Time   `json:"createdAt"`
	DueDate     *time.Time  `json:"dueDate,omitempty"`
	Tags        []string    `json:"tags"`
	GitHubLink  *GitHubLink `json:"githubLink,omitempty"`
	Streak      *int        `json:"streak,omitempty"`
}

// Clone returns a copy that shares no memory with t.
func (t Task) Clone() Task {
	c := t
	c.Tags = slices.Clone(t.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.GitHubLink != nil {
		l := *t.GitHubLink
		c.GitHubLink = &l
	}
	if t.Streak != nil {
		s := *t.Streak
		c.Streak = &s
	}
	return c
}

// TaskInput carries the caller-supplied fields of a new task. The store
// assigns ID, CreatedAt and Completed.
type TaskInput struct {
	Title       string
	Description string
	CodeSnippet string
	Priority    Priority
	Category    Category
	DueDate     *time.Time
	Tags        []string
	GitHubLink  *GitHubLink
}

// TaskUpdate is a partial merge. Nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	CodeSnippet *string
	Priority    *Priority
	Category    *Category
	Completed   *bool
	DueDate     *time.Time
	Tags        []string
	GitHubLink  *GitHubLink
	Streak      *int

	ClearDueDate    bool
	ClearGitHubLink bool
}

// Apply merges u into t. ID and CreatedAt are never touched.
func (u TaskUpdate) Apply(t *Task) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.CodeSnippet != nil {
		t.CodeSnippet = *u.CodeSnippet
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
	switch {
	case u.ClearDueDate:
		t.DueDate = nil
	case u.DueDate != nil:
		d := *u.DueDate
		t.DueDate = &d
	}
	if u.Tags != nil {
		t.Tags = NormalizeTags(u.Tags)
	}
	switch {
	case u.ClearGitHubLink:
		t.GitHubLink = nil
	case u.GitHubLink != nil:
		l := *u.GitHubLink
		t.GitHubLink = &l
	}
	if u.Streak != nil {
		s := *u.Streak
		t.Streak = &s
	}
}

// NormalizeTags trims whitespace, drops empty entries and removes
// duplicates, keeping the first occurrence.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// ParseTags splits a comma-separated list.
func ParseTags(s string) []string {
	return NormalizeTags(strings.Split(s, ","))
}
