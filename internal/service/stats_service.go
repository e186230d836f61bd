package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

const uncategorizedColor = "#9CA3AF"

// Overview holds headline counts for the dashboard.
type Overview struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	CompletionRate int `json:"completionRate"`
}

// PriorityPoint is one slice of the priority distribution chart.
type PriorityPoint struct {
	Name     string         `json:"name"`
	Value    int            `json:"value"`
	Priority model.Priority `json:"priority"`
}

// CategoryPoint is one slice of the category distribution chart.
type CategoryPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// TrendPoint carries one calendar day's created/completed counts.
type TrendPoint struct {
	Date      string `json:"date"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

// WindowStats counts activity inside a trailing window.
type WindowStats struct {
	Created   int `json:"created"`
	Completed int `json:"completed"`
}

// Charts groups the chart-ready series.
type Charts struct {
	Priority   []PriorityPoint `json:"priority"`
	Category   []CategoryPoint `json:"category"`
	WeekTrend  []TrendPoint    `json:"weekTrend"`
	MonthTrend []TrendPoint    `json:"monthTrend"`
}

// RecentActivity holds the 7- and 30-day rollups.
type RecentActivity struct {
	Last7Days  WindowStats `json:"last7Days"`
	Last30Days WindowStats `json:"last30Days"`
}

// Stats is the full statistics payload.
type Stats struct {
	Overview Overview       `json:"overview"`
	Charts   Charts         `json:"charts"`
	Recent   RecentActivity `json:"recent"`
}

// StatsService aggregates over the task collection at call time; it keeps no
// state between calls.
type StatsService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
	loc          *time.Location
}

func NewStatsService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository, loc *time.Location) *StatsService {
	if loc == nil {
		loc = time.Local
	}
	return &StatsService{taskRepo: taskRepo, categoryRepo: categoryRepo, loc: loc}
}

// Collect computes all statistics as of now.
func (s *StatsService) Collect(ctx context.Context, now time.Time) (*Stats, error) {
	tasks, err := s.taskRepo.List(ctx, repository.TaskFilter{})
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now = now.In(s.loc)

	stats := &Stats{
		Overview: s.overview(tasks),
		Charts: Charts{
			Priority:   s.priorityDistribution(tasks),
			Category:   s.categoryDistribution(tasks, categories),
			WeekTrend:  s.trend(tasks, now, 7),
			MonthTrend: s.trend(tasks, now, 30),
		},
		Recent: RecentActivity{
			Last7Days:  s.window(tasks, now.AddDate(0, 0, -7)),
			Last30Days: s.window(tasks, now.AddDate(0, 0, -30)),
		},
	}
	return stats, nil
}

func (s *StatsService) overview(tasks []model.Task) Overview {
	o := Overview{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			o.Completed++
		}
	}
	o.Pending = o.Total - o.Completed
	if o.Total > 0 {
		o.CompletionRate = int(math.Round(float64(o.Completed) / float64(o.Total) * 100))
	}
	return o
}

func (s *StatsService) priorityDistribution(tasks []model.Task) []PriorityPoint {
	counts := make(map[model.Priority]int)
	for _, task := range tasks {
		counts[task.Priority]++
	}

	points := make([]PriorityPoint, 0, len(model.Priorities))
	for _, p := range model.Priorities {
		points = append(points, PriorityPoint{Name: p.Label(), Value: counts[p], Priority: p})
	}
	return points
}

// categoryDistribution emits one point per category holding tasks, in category
// creation order, plus an Uncategorized bucket when unassigned tasks exist.
func (s *StatsService) categoryDistribution(tasks []model.Task, categories []model.Category) []CategoryPoint {
	counts := make(map[string]int)
	uncategorized := 0
	for _, task := range tasks {
		if task.CategoryID == nil {
			uncategorized++
			continue
		}
		counts[*task.CategoryID]++
	}

	var points []CategoryPoint
	for _, category := range categories {
		if n := counts[category.ID]; n > 0 {
			points = append(points, CategoryPoint{Name: category.Name, Value: n, Color: category.Color})
		}
	}
	if uncategorized > 0 {
		points = append(points, CategoryPoint{Name: "Uncategorized", Value: uncategorized, Color: uncategorizedColor})
	}
	return points
}

// trend buckets tasks by creation date over the given number of calendar days
// ending today, oldest first. A bucket's completed count covers tasks created
// that day that are completed now.
func (s *StatsService) trend(tasks []model.Task, now time.Time, days int) []TrendPoint {
	points := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		point := TrendPoint{Date: fmt.Sprintf("%d/%02d", int(day.Month()), day.Day())}
		for _, task := range tasks {
			if !sameDay(task.CreatedAt.In(s.loc), day) {
				continue
			}
			point.Created++
			if task.Completed {
				point.Completed++
			}
		}
		points = append(points, point)
	}
	return points
}

func (s *StatsService) window(tasks []model.Task, since time.Time) WindowStats {
	var w WindowStats
	for _, task := range tasks {
		if !task.CreatedAt.Before(since) {
			w.Created++
		}
		if task.Completed && !task.UpdatedAt.Before(since) {
			w.Completed++
		}
	}
	return w
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
