package apiclient

import (
	"encoding/json"

	"roomfinder/models"
)

// The upstream API answers list requests in at least four envelope shapes:
//
//  1. {success: true, data: {<plural>: [...], pagination: {...}}}   canonical
//  2. {message, <plural>: [...], pagination: {...}}                 flat legacy
//  3. {data: {<plural>: [...], pagination: {...}}}                  nested legacy
//  4. a bare entity object carrying an "id" field                   single fetch
//
// normalizeList detects which shape arrived and reduces all of them to one
// canonical result. Shape sniffing stays inside this file; callers only ever
// see listResult.

// listResult is the canonical outcome of a list call before items are
// decoded into their concrete type.
type listResult struct {
	Success    bool
	Message    string
	Items      []any
	Pagination models.Pagination
}

// normalizeList reduces a decoded response body to the canonical list shape.
// key is the plural entity field to look for (e.g. "bookings"). An
// unrecognized shape yields a soft failure with default pagination so the
// caller can render an empty state instead of crashing.
func normalizeList(payload map[string]any, key string, requestedLimit int) listResult {
	// Shape 1: canonical envelope.
	if success, ok := payload["success"].(bool); ok && success {
		if data, ok := payload["data"].(map[string]any); ok {
			if res, ok := listFrom(data, key, requestedLimit); ok {
				return res
			}
		}
	}

	// Shape 2: flat legacy, entities at the top level.
	if res, ok := listFrom(payload, key, requestedLimit); ok {
		return res
	}

	// Shape 3: nested legacy, data wrapper without a success flag.
	if data, ok := payload["data"].(map[string]any); ok {
		if res, ok := listFrom(data, key, requestedLimit); ok {
			return res
		}
		// A single entity wrapped in data.
		if isEntity(data) {
			return singleResult(data, requestedLimit)
		}
	}

	// Shape 4: bare entity with an id field.
	if isEntity(payload) {
		return singleResult(payload, requestedLimit)
	}

	msg := messageFrom(payload)
	if msg == "" {
		msg = "Unrecognized response from server"
	}
	return listResult{
		Success:    false,
		Message:    msg,
		Pagination: models.DefaultPagination(requestedLimit),
	}
}

// listFrom extracts the entity array under key plus its pagination record.
func listFrom(container map[string]any, key string, requestedLimit int) (listResult, bool) {
	items, ok := container[key].([]any)
	if !ok {
		return listResult{}, false
	}

	var pg models.Pagination
	if rawPg, ok := container["pagination"].(map[string]any); ok {
		pg = reconcilePagination(rawPg, requestedLimit)
	} else {
		// No metadata: the items themselves are the whole result set.
		pg = models.DefaultPagination(requestedLimit)
		pg.TotalItems = len(items)
	}

	return listResult{
		Success:    true,
		Message:    messageFrom(container),
		Items:      items,
		Pagination: pg,
	}, true
}

// singleResult wraps a single-resource fetch as a one-item list.
func singleResult(entity map[string]any, requestedLimit int) listResult {
	pg := models.DefaultPagination(requestedLimit)
	pg.TotalItems = 1
	return listResult{
		Success:    true,
		Items:      []any{entity},
		Pagination: pg,
	}
}

// isEntity reports whether the object looks like a bare domain entity.
func isEntity(obj map[string]any) bool {
	id, ok := obj["id"].(string)
	if ok {
		return id != ""
	}
	// Numeric ids decode as float64.
	_, isNum := obj["id"].(float64)
	return isNum
}

// reconcilePagination maps the competing pagination field names onto the
// canonical record. Precedence within each pair is fixed: page over
// currentPage, pages over totalPages, total over totalItems, limit over
// itemsPerPage. Every field is clamped to its minimum valid value.
func reconcilePagination(raw map[string]any, requestedLimit int) models.Pagination {
	if requestedLimit < 1 {
		requestedLimit = 10
	}
	return models.Pagination{
		CurrentPage:  clampMin(pickInt(raw, 1, "page", "currentPage"), 1),
		TotalPages:   clampMin(pickInt(raw, 1, "pages", "totalPages"), 1),
		TotalItems:   clampMin(pickInt(raw, 0, "total", "totalItems"), 0),
		ItemsPerPage: clampMin(pickInt(raw, requestedLimit, "limit", "itemsPerPage"), 1),
	}
}

// pickInt returns the first key present in raw, coerced to int. JSON numbers
// decode as float64; numeric strings are not accepted.
func pickInt(raw map[string]any, fallback int, keys ...string) int {
	for _, key := range keys {
		if val, ok := raw[key]; ok {
			switch n := val.(type) {
			case float64:
				return int(n)
			case int:
				return n
			}
		}
	}
	return fallback
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}

// decodeList re-marshals the loosely typed item array into concrete models.
func decodeList[T any](items []any) ([]T, error) {
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeObject re-marshals a loosely typed object into a concrete model.
func decodeObject[T any](obj any) (*T, error) {
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
