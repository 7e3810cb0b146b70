package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/red-box/internal/app"
	"github.com/MKhiriev/red-box/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify_TextIsVerbatim(t *testing.T) {
	sink := &noticeSink{}

	notify(context.Background(), sink, models.NoticeError, app.TitleError, "100% match, %d %s")

	got := sink.texts(models.NoticeError)
	require.Len(t, got, 1)
	assert.Equal(t, "100% match, %d %s", got[0])
}

func TestNotifyf_Formats(t *testing.T) {
	sink := &noticeSink{}

	notifyf(context.Background(), sink, models.NoticeWarning, app.TitleWarning,
		"%s "+app.MsgAttemptsRemaining, app.MsgVoiceMismatch, 1, "attempt")

	got := sink.texts(models.NoticeWarning)
	require.Len(t, got, 1)
	assert.Equal(t, app.MsgVoiceMismatch+" Biometric verification failed. You have 1 more attempt.", got[0])
}

func TestNotify_NilNotifier(t *testing.T) {
	notify(context.Background(), nil, models.NoticeInfo, app.TitleSuccess, "ignored")
	notifyf(context.Background(), nil, models.NoticeInfo, app.TitleSuccess, "%d", 1)
}
