package service

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestDigestSummary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewDigestService(env.taskRepo, time.UTC)

	now := time.Now().UTC()
	overdue := now.Add(-24 * time.Hour)
	soon := now.Add(24 * time.Hour)
	far := now.Add(30 * 24 * time.Hour)

	seed := []TaskInput{
		{Title: "Pay invoice", DueDate: &overdue},
		{Title: "Prep slides", DueDate: &soon},
		{Title: "Renew passport", DueDate: &far},
		{Title: "No deadline"},
		{Title: "Already done", DueDate: &overdue, Completed: true},
	}
	for i, input := range seed {
		if _, err := env.tasks.CreateTask(ctx, input); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	summary, err := svc.Summary(ctx, now)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if !strings.Contains(summary, "4 open task(s)") {
		t.Fatalf("unexpected open count: %s", summary)
	}
	if !strings.Contains(summary, "Pay invoice") {
		t.Fatalf("overdue task missing: %s", summary)
	}
	if !strings.Contains(summary, "Prep slides") {
		t.Fatalf("due-soon task missing: %s", summary)
	}
	if strings.Contains(summary, "Renew passport") || strings.Contains(summary, "Already done") {
		t.Fatalf("unexpected task in digest: %s", summary)
	}
}
