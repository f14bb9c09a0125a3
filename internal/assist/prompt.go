package assist

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-grocery-list/models"
)

func joinCategories() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func joinPriorities() string {
	names := make([]string, len(models.Priorities))
	for i, p := range models.Priorities {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

func suggestPrompt(name string) string {
	return fmt.Sprintf(`Analyze this grocery item: %q.
1. Categorize it into exactly one of: %s.
2. Suggest a priority (%s) based on whether it is a staple or urgent.
Return JSON only: {"category": "...", "priority": "..."}`,
		name, joinCategories(), joinPriorities())
}

func expandPrompt(text string) string {
	return fmt.Sprintf(`Create a grocery list for this recipe or meal: %q.
For each item provide name, category (one of: %s), quantity and priority (%s).
Return JSON only, as an array of objects: [{"name": "...", "category": "...", "quantity": "...", "priority": "..."}]`,
		text, joinCategories(), joinPriorities())
}
