package bootstrap

import (
	"testing"

	"ai-study-tutor-be/internal/repository/implementation"
	"ai-study-tutor-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	tests := []struct {
		driver     string
		wantDriver string
		wantErr    bool
	}{
		{driver: "memory", wantDriver: memory.Driver},
		{driver: "", wantDriver: memory.Driver},
		{driver: "sqlite", wantDriver: implementation.Driver},
		{driver: "postgres", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			store, err := NewStore(tt.driver, false)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer store.Close()
			assert.Equal(t, tt.wantDriver, store.Driver())
		})
	}
}
