package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// DigestService builds a plain-text summary of the board for the optional
// scheduled report.
type DigestService struct {
	taskRepo *repository.TaskRepository
	loc      *time.Location
}

func NewDigestService(taskRepo *repository.TaskRepository, loc *time.Location) *DigestService {
	if loc == nil {
		loc = time.Local
	}
	return &DigestService{taskRepo: taskRepo, loc: loc}
}

// Summary lists overdue and due-soon tasks and overall open counts.
func (s *DigestService) Summary(ctx context.Context, now time.Time) (string, error) {
	open := false
	tasks, err := s.taskRepo.List(ctx, repository.TaskFilter{Completed: &open})
	if err != nil {
		return "", err
	}

	now = now.In(s.loc)

	var overdue, dueSoon []model.Task
	for _, task := range tasks {
		if task.DueDate == nil {
			continue
		}
		due := task.DueDate.In(s.loc)
		switch {
		case now.After(due):
			overdue = append(overdue, task)
		case due.Sub(now) <= 48*time.Hour:
			dueSoon = append(dueSoon, task)
		}
	}
	sortByDue(overdue)
	sortByDue(dueSoon)

	var b strings.Builder
	fmt.Fprintf(&b, "Task digest for %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "%d open task(s)\n", len(tasks))

	b.WriteString("\nOverdue:\n")
	writeTaskLines(&b, overdue, s.loc)

	b.WriteString("\nDue within 48h:\n")
	writeTaskLines(&b, dueSoon, s.loc)

	return strings.TrimSpace(b.String()), nil
}

func sortByDue(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DueDate.Before(*tasks[j].DueDate)
	})
}

func writeTaskLines(b *strings.Builder, tasks []model.Task, loc *time.Location) {
	if len(tasks) == 0 {
		b.WriteString("- none\n")
		return
	}
	for _, task := range tasks {
		line := fmt.Sprintf("- %s (due %s)", strings.TrimSpace(task.Title), task.DueDate.In(loc).Format("2006-01-02"))
		if task.Category != nil {
			line += fmt.Sprintf(" [%s]", task.Category.Name)
		}
		b.WriteString(line + "\n")
	}
}
