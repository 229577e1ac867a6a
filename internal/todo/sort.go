package todo

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"

	"getthingsdone/internal/models"
)

// sortTasks orders tasks in place by lowercased text. The sort is stable.
// The collator is not safe for concurrent use; callers hold the list lock.
func sortTasks(c *collate.Collator, tasks []models.Task, dir models.SortDirection) {
	slices.SortStableFunc(tasks, func(a, b models.Task) int {
		ka, kb := strings.ToLower(a.Task), strings.ToLower(b.Task)
		if dir == models.SortDescending {
			return c.CompareString(kb, ka)
		}
		return c.CompareString(ka, kb)
	})
}
