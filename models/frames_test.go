package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFrame_SyncRequiredCarriesTablesAndSince(t *testing.T) {
	raw := []byte(`{"type":"sync_required","tables":["inbox","sent"],"since":"2026-08-20T10:00:00Z"}`)

	frame, err := DecodeFrame(raw)
	require.NoError(t, err)

	assert.Equal(t, FrameSyncRequired, frame.Type)
	assert.Equal(t, []string{"inbox", "sent"}, frame.Tables)
	require.NotNil(t, frame.Since)
	assert.Equal(t, time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC), frame.Since.UTC())
	assert.True(t, frame.IsSyncRequired())
	assert.False(t, frame.IsNotification())
}

func TestDecodeFrame_RejectsMalformedAndUntyped(t *testing.T) {
	_, err := DecodeFrame([]byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode frame")

	_, err = DecodeFrame([]byte(`{"message":"no type field"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing type")
}

func TestFrame_UnknownKindIsForwardedAsNotification(t *testing.T) {
	frame, err := DecodeFrame([]byte(`{"type":"calendar_changed","data":{"id":42}}`))
	require.NoError(t, err)

	assert.True(t, frame.IsNotification())
	assert.False(t, frame.IsSyncRequired())
	assert.JSONEq(t, `{"id":42}`, string(frame.Data))
}

func TestFrame_ClassificationPerKind(t *testing.T) {
	notifications := map[FrameType]bool{
		FrameConnected:       false,
		FrameHeartbeat:       false,
		FramePong:            false,
		FrameSyncRequired:    false,
		FrameNewMail:         true,
		FrameSettingsChanged: true,
		FrameError:           false,
		FrameAuthFailed:      false,
	}

	for kind, want := range notifications {
		got := Frame{Type: kind}.IsNotification()
		if got != want {
			t.Errorf("%s: IsNotification() = %v, want %v", kind, got, want)
		}
	}
}

func TestClientFrames_MarshalShape(t *testing.T) {
	auth, err := json.Marshal(NewAuthFrame("bearer-token"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"auth","token":"bearer-token"}`, string(auth))

	ping, err := json.Marshal(NewPingFrame())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ping"}`, string(ping))
}
