package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	evt := New(TypeMessageExchanged, map[string]interface{}{
		"conversation_id": "c1",
		"fallback":        true,
	})

	raw, err := Encode(evt)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, TypeMessageExchanged, got.EventType())
	assert.Equal(t, "c1", got.Payload()["conversation_id"])
	assert.Equal(t, true, got.Payload()["fallback"])
	assert.True(t, evt.Timestamp().Equal(got.Timestamp()))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)
}
