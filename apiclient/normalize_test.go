package apiclient

import (
	"encoding/json"
	"testing"

	"roomfinder/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestNormalizeListEnvelopeShapes(t *testing.T) {
	canonical := decodeBody(t, `{
		"success": true,
		"data": {
			"bookings": [{"id": "b1", "status": "CONFIRMED"}],
			"pagination": {"page": 2, "pages": 5, "total": 42, "limit": 10}
		}
	}`)
	flatLegacy := decodeBody(t, `{
		"message": "ok",
		"bookings": [{"id": "b1", "status": "CONFIRMED"}],
		"pagination": {"page": 2, "pages": 5, "total": 42, "limit": 10}
	}`)
	nestedLegacy := decodeBody(t, `{
		"data": {
			"bookings": [{"id": "b1", "status": "CONFIRMED"}],
			"pagination": {"page": 2, "pages": 5, "total": 42, "limit": 10}
		}
	}`)

	want := models.Pagination{CurrentPage: 2, TotalPages: 5, TotalItems: 42, ItemsPerPage: 10}
	for name, payload := range map[string]map[string]any{
		"canonical":     canonical,
		"flat legacy":   flatLegacy,
		"nested legacy": nestedLegacy,
	} {
		res := normalizeList(payload, "bookings", 10)
		assert.True(t, res.Success, name)
		assert.Equal(t, want, res.Pagination, name)
		require.Len(t, res.Items, 1, name)
		item, ok := res.Items[0].(map[string]any)
		require.True(t, ok, name)
		assert.Equal(t, "b1", item["id"], name)
	}
}

func TestNormalizeListBareEntity(t *testing.T) {
	payload := decodeBody(t, `{"id": "b7", "status": "PENDING"}`)

	res := normalizeList(payload, "bookings", 10)

	assert.True(t, res.Success)
	require.Len(t, res.Items, 1)
	item := res.Items[0].(map[string]any)
	assert.Equal(t, "b7", item["id"])
	assert.Equal(t, models.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 1, ItemsPerPage: 10}, res.Pagination)
}

func TestNormalizeListFlatLegacyScenario(t *testing.T) {
	payload := decodeBody(t, `{
		"message": "ok",
		"bookings": [{"id": "b1"}],
		"pagination": {"page": 2, "pages": 5, "total": 42, "limit": 10}
	}`)

	res := normalizeList(payload, "bookings", 10)

	assert.True(t, res.Success)
	assert.Equal(t, "ok", res.Message)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "b1", res.Items[0].(map[string]any)["id"])
	assert.Equal(t, models.Pagination{CurrentPage: 2, TotalPages: 5, TotalItems: 42, ItemsPerPage: 10}, res.Pagination)
}

func TestNormalizeListUnrecognizedShape(t *testing.T) {
	payload := decodeBody(t, `{"message": "teapot", "weird": {"nested": true}}`)

	res := normalizeList(payload, "bookings", 25)

	assert.False(t, res.Success)
	assert.Equal(t, "teapot", res.Message)
	assert.Empty(t, res.Items)
	assert.Equal(t, models.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 0, ItemsPerPage: 25}, res.Pagination)
}

func TestNormalizeListMissingPaginationDerivesTotals(t *testing.T) {
	payload := decodeBody(t, `{"message": "ok", "reviews": [{"id": "r1"}, {"id": "r2"}]}`)

	res := normalizeList(payload, "reviews", 10)

	assert.True(t, res.Success)
	assert.Equal(t, models.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 2, ItemsPerPage: 10}, res.Pagination)
}

func TestReconcilePaginationFieldNames(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.Pagination
	}{
		{
			name: "legacy names",
			raw:  `{"page": 3, "pages": 7, "total": 61, "limit": 10}`,
			want: models.Pagination{CurrentPage: 3, TotalPages: 7, TotalItems: 61, ItemsPerPage: 10},
		},
		{
			name: "canonical names",
			raw:  `{"currentPage": 3, "totalPages": 7, "totalItems": 61, "itemsPerPage": 10}`,
			want: models.Pagination{CurrentPage: 3, TotalPages: 7, TotalItems: 61, ItemsPerPage: 10},
		},
		{
			name: "mixed names",
			raw:  `{"page": 3, "totalPages": 7, "total": 61, "itemsPerPage": 10}`,
			want: models.Pagination{CurrentPage: 3, TotalPages: 7, TotalItems: 61, ItemsPerPage: 10},
		},
		{
			name: "legacy wins when both present",
			raw:  `{"page": 2, "currentPage": 9, "pages": 4, "totalPages": 9, "total": 31, "totalItems": 99, "limit": 8, "itemsPerPage": 99}`,
			want: models.Pagination{CurrentPage: 2, TotalPages: 4, TotalItems: 31, ItemsPerPage: 8},
		},
		{
			name: "clamped to minimums",
			raw:  `{"page": 0, "pages": -3, "total": -5, "limit": 0}`,
			want: models.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 0, ItemsPerPage: 1},
		},
		{
			name: "empty record falls back",
			raw:  `{}`,
			want: models.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 0, ItemsPerPage: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw map[string]any
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &raw))
			got := reconcilePagination(raw, 10)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.CurrentPage, 1)
			assert.GreaterOrEqual(t, got.TotalPages, 1)
			assert.GreaterOrEqual(t, got.ItemsPerPage, 1)
			assert.GreaterOrEqual(t, got.TotalItems, 0)
		})
	}
}
