package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	var v struct {
		A Duration `json:"a"`
		B Duration `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"24h","b":3000000000}`), &v))
	assert.Equal(t, 24*time.Hour, v.A.Duration)
	assert.Equal(t, 3*time.Second, v.B.Duration)

	require.Error(t, json.Unmarshal([]byte(`{"a":"soon"}`), &v))
	require.Error(t, json.Unmarshal([]byte(`{"a":true}`), &v))
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration{Duration: 90 * time.Second})
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}

func TestSameDay(t *testing.T) {
	loc := time.FixedZone("X", 3*3600)
	a := time.Date(2026, 3, 1, 22, 30, 0, 0, time.UTC) // 01:30 on Mar 2 in X
	b := time.Date(2026, 3, 2, 10, 0, 0, 0, loc)

	assert.True(t, SameDay(a, b, loc))
	assert.False(t, SameDay(a, b, time.UTC))
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, 5, 4, 17, 45, 12, 9, time.UTC)
	assert.Equal(t, time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
}
