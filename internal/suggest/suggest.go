// Package suggest implements the rule-based task helpers: a templated
// description generator and a keyword-driven category suggester. Both are
// pure functions over ordered keyword tables; nothing is learned or stored.
package suggest

import (
	"strings"

	"taskboard/internal/model"
)

// CategorySuggestion is a suggested category. When IsNew is true the category
// does not exist yet; the caller decides whether to create it.
type CategorySuggestion struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color"`
	IsNew bool   `json:"isNew,omitempty"`
}

// descriptionRules map title keywords to a template. The first matching group
// wins; order is part of the contract.
var descriptionRules = []struct {
	keywords []string
	template string
}{
	{[]string{"study", "review", "learn", "学习", "复习"},
		"Outline a study plan, gather the materials, and set aside time for focused sessions. Work in stages and keep notes as you go."},
	{[]string{"meeting", "standup", "会议", "开会"},
		"Prepare the agenda and materials in advance, confirm attendees, and set a reminder. Take notes during the meeting and follow up on action items."},
	{[]string{"report", "summary", "报告", "总结"},
		"Collect the relevant data, organize and analyze the content, then draft and revise. Keep the structure clear and the numbers accurate."},
	{[]string{"buy", "purchase", "shopping", "购买", "采购"},
		"List out what is needed, compare options on price and quality, and pick the best one before purchasing."},
	{[]string{"travel", "trip", "flight", "旅行", "出行"},
		"Plan the itinerary, book transport and accommodation, pack the essentials, and double-check documents and insurance."},
	{[]string{"project", "develop", "build", "项目", "开发"},
		"Clarify the requirements and goals, lay out an implementation plan, allocate the work, and track progress and quality regularly."},
	{[]string{"workout", "gym", "exercise", "健身", "运动"},
		"Set up a training plan, pick a suitable routine and time, get the gear ready, and log each session to stay consistent."},
	{[]string{"read", "book", "读书", "阅读"},
		"Choose a worthwhile book, set a reading schedule, take notes, and revisit the key ideas periodically."},
}

const genericDescription = "Break the task down, lay out a concrete plan, line up the resources and tools you need, and work through it step by step."

// GenerateDescription returns a templated description for the title.
// Falls back to a generic template when no keyword group matches.
func GenerateDescription(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range descriptionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.template
			}
		}
	}
	return genericDescription
}

// categoryRules map keyword groups to a category type. Order matters: on a
// multi-keyword tie the first group in this table wins, and among existing
// categories the first in creation order wins.
var categoryRules = []struct {
	kind     string
	name     string
	color    string
	keywords []string
}{
	{"work", "Work", "#3B82F6", []string{"work", "meeting", "report", "project", "develop", "design", "client", "deadline", "工作", "会议", "报告", "项目", "开发", "客户"}},
	{"personal", "Personal", "#10B981", []string{"personal", "errand", "shopping", "buy", "chore", "clean", "repair", "个人", "生活", "购买", "购物", "家务", "整理"}},
	{"health", "Health", "#EF4444", []string{"health", "gym", "workout", "exercise", "doctor", "checkup", "diet", "sleep", "健康", "健身", "运动", "医院", "体检"}},
	{"learning", "Learning", "#8B5CF6", []string{"learning", "study", "course", "training", "exam", "review", "read", "学习", "课程", "培训", "考试", "读书", "阅读"}},
	{"finance", "Finance", "#F59E0B", []string{"finance", "budget", "invest", "bill", "tax", "insurance", "bank", "payment", "财务", "理财", "投资", "账单", "税务"}},
	{"travel", "Travel", "#06B6D4", []string{"travel", "trip", "flight", "hotel", "itinerary", "visa", "vacation", "旅行", "旅游", "机票", "酒店", "签证"}},
	{"family", "Family", "#EC4899", []string{"family", "kids", "parents", "birthday", "holiday", "gathering", "家庭", "孩子", "父母", "聚会", "生日"}},
	{"hobby", "Hobby", "#84CC16", []string{"hobby", "game", "movie", "music", "photography", "painting", "爱好", "娱乐", "游戏", "电影", "音乐", "摄影"}},
}

// SuggestCategory picks a category for the given title and description.
// Existing categories are preferred, scanned in creation order: first by
// literal name match against the text, then through the keyword table. When
// only the keyword table matches, a not-yet-persisted suggestion is returned.
// Returns nil when nothing matches.
func SuggestCategory(title, description string, categories []model.Category) *CategorySuggestion {
	content := strings.ToLower(title + " " + description)

	for _, category := range categories {
		name := strings.ToLower(strings.TrimSpace(category.Name))
		if name == "" {
			continue
		}
		if strings.Contains(content, name) {
			return existing(category)
		}
		for _, rule := range categoryRules {
			if !strings.Contains(name, rule.kind) && !strings.Contains(rule.kind, name) &&
				!strings.Contains(name, strings.ToLower(rule.name)) {
				continue
			}
			for _, kw := range rule.keywords {
				if strings.Contains(content, kw) {
					return existing(category)
				}
			}
		}
	}

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(content, kw) {
				return &CategorySuggestion{Name: rule.name, Color: rule.color, IsNew: true}
			}
		}
	}

	return nil
}

func existing(category model.Category) *CategorySuggestion {
	return &CategorySuggestion{ID: category.ID, Name: category.Name, Color: category.Color}
}
