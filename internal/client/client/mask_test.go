package client

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUpdateMask(t *testing.T) {
	tests := []struct {
		name  string
		patch map[string]any
		want  []string
	}{
		{
			name:  "flat and nested",
			patch: map[string]any{"name": "x", "linked": map[string]any{"albums": []string{"a"}}},
			want:  []string{"linked.albums", "name"},
		},
		{
			name:  "nested object becomes dotted path",
			patch: map[string]any{"coverPhoto": map[string]any{"id": "p1"}},
			want:  []string{"coverPhoto.id"},
		},
		{
			name:  "nil and slices are leaves",
			patch: map[string]any{"published": nil, "tags": []any{map[string]any{"x": 1}}},
			want:  []string{"published", "tags"},
		},
		{
			name:  "empty nested map contributes nothing",
			patch: map[string]any{"metadata": map[string]any{}, "name": ""},
			want:  []string{"name"},
		},
		{
			name: "deep nesting",
			patch: map[string]any{
				"a": map[string]any{"b": map[string]any{"c": 1, "d": false}},
			},
			want: []string{"a.b.c", "a.b.d"},
		},
		{
			name:  "empty patch",
			patch: map[string]any{},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, UpdateMask(tt.patch)); diff != "" {
				t.Fatalf("UpdateMask mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
