package assist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-grocery-list/models"
)

// ParseSuggestion reads a {"category", "priority"} object out of raw model
// output. Markdown code fences are ignored and a one-element array is
// accepted. Fields outside the closed sets come back empty; ok is false when
// neither field survived.
func ParseSuggestion(raw string) (s models.Suggestion, ok bool, err error) {
	body := stripCodeFence(raw)
	if body == "" {
		return s, false, ErrEmptyResponse
	}

	var out struct {
		Category string `json:"category"`
		Priority string `json:"priority"`
	}
	if err = json.Unmarshal([]byte(body), &out); err != nil {
		var list []json.RawMessage
		if listErr := json.Unmarshal([]byte(body), &list); listErr != nil || len(list) == 0 {
			return s, false, fmt.Errorf("%w: %w", ErrUnparseable, err)
		}
		if err = json.Unmarshal(list[0], &out); err != nil {
			return s, false, fmt.Errorf("%w: %w", ErrUnparseable, err)
		}
	}

	if c, valid := models.ParseCategory(out.Category); valid {
		s.Category = c
	}
	if p, valid := models.ParsePriority(out.Priority); valid {
		s.Priority = p
	}

	return s, s.Category != "" || s.Priority != "", nil
}

// ParseDrafts reads a list of ingredient drafts out of raw model output.
//
// Accepted shapes are a bare array, or an object holding the array under
// any key ("items" and "ingredients" are tried first). Drafts without a name
// are dropped; an unknown category becomes Other and an unknown priority
// becomes Medium. A numeric quantity is kept as its text.
func ParseDrafts(raw string) ([]models.ItemDraft, error) {
	body := stripCodeFence(raw)
	if body == "" {
		return nil, ErrEmptyResponse
	}

	list, err := draftArray([]byte(body))
	if err != nil {
		return nil, err
	}

	drafts := make([]models.ItemDraft, 0, len(list))
	for _, entry := range list {
		var d rawDraft
		if err := json.Unmarshal(entry, &d); err != nil {
			continue
		}
		if draft, ok := d.toDraft(); ok {
			drafts = append(drafts, draft)
		}
	}

	return drafts, nil
}

var preferredListKeys = []string{"items", "ingredients", "groceries", "list"}

func draftArray(body []byte) ([]json.RawMessage, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}

	keys := make([]string, 0, len(wrapper))
	for k := range wrapper {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	keys = append(append([]string{}, preferredListKeys...), keys...)

	for _, k := range keys {
		value, ok := wrapper[k]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, &list); err == nil {
			return list, nil
		}
	}

	return nil, fmt.Errorf("%w: no array in object", ErrUnparseable)
}

type rawDraft struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity json.RawMessage `json:"quantity"`
	Priority string          `json:"priority"`
}

func (r rawDraft) toDraft() (models.ItemDraft, bool) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return models.ItemDraft{}, false
	}

	d := models.ItemDraft{
		Name:     name,
		Category: models.CategoryOther,
		Priority: models.PriorityMedium,
		Quantity: quantityText(r.Quantity),
	}
	if c, ok := models.ParseCategory(r.Category); ok {
		d.Category = c
	}
	if p, ok := models.ParsePriority(r.Priority); ok {
		d.Priority = p
	}
	return d, true
}

func quantityText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	return ""
}

// stripCodeFence removes a surrounding ```json ... ``` block, if present.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}
