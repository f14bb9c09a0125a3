package assist

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-grocery-list/models"
)

// keywordAssistant works offline. It matches item names against keyword
// tables, exact name first and then the longest contained keyword.
type keywordAssistant struct {
	exact     map[string]models.Category
	substring []keywordEntry
}

type keywordEntry struct {
	keyword  string
	category models.Category
}

func NewKeywordAssistant() Assistant {
	a := &keywordAssistant{exact: make(map[string]models.Category)}

	for category, words := range categoryKeywords {
		for _, w := range words {
			a.exact[w] = category
			a.substring = append(a.substring, keywordEntry{keyword: w, category: category})
		}
	}

	// longer keywords are more specific: "peanut butter" beats "butter"
	sort.Slice(a.substring, func(i, j int) bool {
		if len(a.substring[i].keyword) != len(a.substring[j].keyword) {
			return len(a.substring[i].keyword) > len(a.substring[j].keyword)
		}
		return a.substring[i].keyword < a.substring[j].keyword
	})

	return a
}

func (a *keywordAssistant) Suggest(_ context.Context, name string) (models.Suggestion, bool) {
	category, ok := a.categorize(name)
	if !ok {
		return models.Suggestion{}, false
	}

	return models.Suggestion{Category: category, Priority: priorityFor(name, category)}, true
}

// Expand splits text on commas, semicolons and line breaks, reading a
// leading amount and unit as the quantity.
func (a *keywordAssistant) Expand(_ context.Context, text string) []models.ItemDraft {
	pieces := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n' || r == '\r'
	})

	drafts := make([]models.ItemDraft, 0, len(pieces))
	for _, piece := range pieces {
		quantity, name := splitQuantity(trimListMarker(piece))
		if name == "" {
			continue
		}

		category, ok := a.categorize(name)
		if !ok {
			category = models.CategoryOther
		}
		drafts = append(drafts, models.ItemDraft{
			Name:     name,
			Category: category,
			Quantity: quantity,
			Priority: priorityFor(name, category),
		})
	}

	return drafts
}

func (a *keywordAssistant) categorize(name string) (models.Category, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return "", false
	}

	if c, ok := a.exact[n]; ok {
		return c, true
	}
	for _, e := range a.substring {
		if strings.Contains(n, e.keyword) {
			return e.category, true
		}
	}

	return "", false
}

// priorityFor marks everyday staples High and treats and household goods Low.
func priorityFor(name string, category models.Category) models.Priority {
	n := strings.ToLower(name)
	for _, s := range staples {
		if strings.Contains(n, s) {
			return models.PriorityHigh
		}
	}
	for _, s := range treats {
		if strings.Contains(n, s) {
			return models.PriorityLow
		}
	}
	if category == models.CategoryHousehold {
		return models.PriorityLow
	}
	return models.PriorityMedium
}

func trimListMarker(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "-*•· \t")

	// "1." / "2)" numbering
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') && (i+1 == len(s) || s[i+1] == ' ') {
		s = s[i+1:]
	}

	return strings.TrimSpace(s)
}

// splitQuantity separates "2 lbs chicken breast" into ("2 lbs", "chicken
// breast"). Text without a leading amount is returned whole as the name.
func splitQuantity(s string) (quantity, name string) {
	fields := strings.Fields(s)
	if len(fields) < 2 || !isAmount(fields[0]) {
		return "", strings.Join(fields, " ")
	}

	n := 1
	if len(fields) > 2 && isAmount(fields[1]) {
		// "1 1/2 cups"
		n = 2
	}
	if len(fields) > n+1 {
		if _, ok := units[strings.ToLower(strings.TrimSuffix(fields[n], "."))]; ok {
			n++
		}
	}
	if len(fields) > n && strings.EqualFold(fields[n], "of") && len(fields) > n+1 {
		return strings.Join(fields[:n], " "), strings.Join(fields[n+1:], " ")
	}

	return strings.Join(fields[:n], " "), strings.Join(fields[n:], " ")
}

func isAmount(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '/' && r != '.' && r != 'x' && !unicode.Is(unicode.No, r) {
			return false
		}
	}
	return unicode.IsDigit([]rune(s)[0]) || unicode.Is(unicode.No, []rune(s)[0])
}

var units = map[string]struct{}{
	"g": {}, "kg": {}, "mg": {}, "ml": {}, "l": {}, "lb": {}, "lbs": {}, "oz": {},
	"cup": {}, "cups": {}, "tbsp": {}, "tsp": {}, "tablespoon": {}, "tablespoons": {},
	"teaspoon": {}, "teaspoons": {}, "clove": {}, "cloves": {}, "can": {}, "cans": {},
	"pack": {}, "packs": {}, "bunch": {}, "bunches": {}, "slice": {}, "slices": {},
	"pinch": {}, "dozen": {}, "bottle": {}, "bottles": {}, "jar": {}, "jars": {},
	"head": {}, "heads": {}, "loaf": {}, "loaves": {}, "pcs": {}, "piece": {}, "pieces": {},
}

var staples = []string{"milk", "egg", "bread", "butter", "rice", "flour", "water", "toilet paper", "onion", "potato"}

var treats = []string{"chocolate", "candy", "chips", "cookie", "ice cream", "soda", "wine", "beer", "popcorn"}

var categoryKeywords = map[models.Category][]string{
	models.CategoryProduce: {
		"apple", "banana", "orange", "lemon", "lime", "avocado", "tomato", "potato",
		"onion", "garlic", "lettuce", "spinach", "kale", "broccoli", "carrot", "celery",
		"cucumber", "bell pepper", "mushroom", "corn", "grape", "strawberr", "blueberr",
		"raspberr", "watermelon", "pineapple", "mango", "peach", "pear", "cilantro",
		"basil", "parsley", "ginger", "jalapeño", "zucchini", "asparagus", "green beans",
		"eggplant", "cabbage", "cauliflower", "squash", "arugula", "romaine", "herbs", "fruit", "salad",
	},
	models.CategoryDairy: {
		"milk", "eggs", "egg", "butter", "cheese", "yogurt", "yoghurt", "cream",
		"sour cream", "cream cheese", "cottage cheese", "half and half", "kefir", "parmesan",
		"mozzarella",
	},
	models.CategoryMeat: {
		"chicken", "beef", "pork", "turkey", "bacon", "sausage", "ham", "steak", "salmon",
		"shrimp", "tuna", "fish", "lamb", "crab", "lobster", "tilapia", "mince", "ground beef",
		"hot dog", "deli meat", "prosciutto",
	},
	models.CategoryPantry: {
		"rice", "pasta", "flour", "sugar", "salt", "black pepper", "olive oil", "oil", "vinegar",
		"soy sauce", "ketchup", "mustard", "mayonnaise", "honey", "peanut butter", "jam",
		"cereal", "oatmeal", "oats", "canned", "soup", "broth", "stock", "beans", "lentils",
		"nuts", "almonds", "spaghetti", "noodle", "maple syrup", "hot sauce", "salsa", "spice",
		"cinnamon", "baking soda", "baking powder", "yeast", "chips", "crackers", "cookies",
		"popcorn", "chocolate", "candy", "granola",
	},
	models.CategoryFrozen: {
		"frozen", "ice cream", "popsicle", "frozen pizza", "ice cubes",
	},
	models.CategoryBakery: {
		"bread", "bagel", "tortilla", "roll", "bun", "muffin", "croissant", "pita",
		"baguette", "sourdough", "cake", "pie crust",
	},
	models.CategoryBeverages: {
		"water", "juice", "coffee", "tea", "soda", "beer", "wine", "kombucha", "lemonade",
		"sparkling water", "drink",
	},
	models.CategoryHousehold: {
		"paper towel", "toilet paper", "trash bag", "dish soap", "detergent", "laundry",
		"sponge", "foil", "plastic wrap", "ziplock", "light bulb", "batteries", "napkins",
		"bleach", "cleaner", "shampoo", "conditioner", "soap", "toothpaste", "toothbrush",
		"deodorant", "tissues", "razor", "sunscreen",
	},
}
