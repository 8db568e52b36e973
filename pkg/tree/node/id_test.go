package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDSet_Add(t *testing.T) {
	tests := []struct {
		name string
		s    IDSet
		ids  []ID
		want []ID
	}{
		{
			name: "add to empty",
			s:    NewIDSet(),
			ids:  []ID{"c", "a", "b"},
			want: []ID{"a", "b", "c"},
		},
		{
			name: "add existing",
			s:    NewIDSet("a"),
			ids:  []ID{"a", "b"},
			want: []ID{"a", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.s.Add(tt.ids...)
			for _, id := range tt.ids {
				assert.True(t, tt.s.Contains(id), "expected set to contain %q", id)
			}
			assert.Equal(t, tt.want, tt.s.Sorted())
		})
	}
}
