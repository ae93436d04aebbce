package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/client/api"
)

// priorityRank orders priorities from most to least urgent for sorting.
var priorityRank = map[string]int{"high": 0, "medium": 1, "low": 2}

// sortTasks sorts in place by the given key: "due", "priority", or "title".
// Tasks without a due date sort last under "due".
func sortTasks(list []api.Task, key string) {
	switch key {
	case "due":
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].DueDate == "" {
				return false
			}
			if list[j].DueDate == "" {
				return true
			}
			// YYYY-MM-DD compares correctly as a string
			return list[i].DueDate < list[j].DueDate
		})
	case "priority":
		sort.SliceStable(list, func(i, j int) bool {
			return priorityRank[list[i].Priority] < priorityRank[list[j].Priority]
		})
	case "title":
		sort.SliceStable(list, func(i, j int) bool {
			return strings.ToLower(list[i].Title) < strings.ToLower(list[j].Title)
		})
	}
}

// filterTasks returns the tasks whose title or description contains query,
// case-insensitively. An empty query matches everything.
func filterTasks(list []api.Task, query string) []api.Task {
	if query == "" {
		return list
	}

	query = strings.ToLower(query)
	out := make([]api.Task, 0, len(list))
	for _, t := range list {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Description), query) {
			out = append(out, t)
		}
	}
	return out
}

func printTasks(w io.Writer, list []api.Task) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No tasks")
		return
	}

	for _, t := range list {
		mark := " "
		if t.Status == "completed" {
			mark = "x"
		}
		due := t.DueDate
		if due == "" {
			due = "-"
		}
		fmt.Fprintf(w, "[%s] %-8s %-10s %s  %s\n", mark, t.Priority, due, t.ID, t.Title)
	}
}
