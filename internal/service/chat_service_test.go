package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agribrain/backend/internal/capture"
	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/history"
	"agribrain/backend/internal/model"
	"agribrain/backend/internal/repository"
	"agribrain/backend/internal/resolver"
	"agribrain/backend/internal/service"
	"agribrain/backend/internal/session"
)

// fixedClock returns a clock that advances one second per call.
func fixedClock() func() time.Time {
	t := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func openLog[T any](t *testing.T, store repository.KVStore, key string) *history.Log[T] {
	t.Helper()
	log, err := history.Open[T](context.Background(), store, key)
	require.NoError(t, err)
	return log
}

func setupChatService(t *testing.T, replies session.Resolver[string, string]) (*service.ChatService, repository.KVStore, *capture.DeviceManager) {
	store := repository.NewMemoryStore()
	devices := capture.NewDeviceManager()
	svc := service.NewChatService(openLog[model.Message](t, store, history.KeyChat), replies, devices, session.Options{Clock: fixedClock()})
	t.Cleanup(svc.Close)
	return svc, store, devices
}

func TestChatService_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - appends question and answer", func(t *testing.T) {
		svc, store, _ := setupChatService(t, resolver.NewDefaultKeyword())

		ex, err := svc.Send(ctx, "How do I deal with PEST problems?")
		require.NoError(t, err)
		assert.Equal(t, model.SenderUser, ex.Question.Sender)
		assert.Equal(t, model.SenderAssistant, ex.Answer.Sender)
		assert.Contains(t, ex.Answer.Text, "pest")
		assert.True(t, ex.Answer.Timestamp > ex.Question.Timestamp)

		msgs, err := svc.History(ctx)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "How do I deal with PEST problems?", msgs[0].Text)

		// The log is persisted, so a fresh open sees the same conversation.
		reloaded := openLog[model.Message](t, store, history.KeyChat)
		assert.Equal(t, msgs, reloaded.Entries())
		assert.Equal(t, session.StateIdle, svc.Status().State)
	})

	t.Run("Failure - blank text never starts a session", func(t *testing.T) {
		svc, _, _ := setupChatService(t, resolver.NewDefaultKeyword())

		_, err := svc.Send(ctx, "   \n")
		assert.ErrorIs(t, err, app_errors.ErrValidation)

		st := svc.Status()
		assert.Equal(t, session.StateIdle, st.State)
		assert.Empty(t, st.ID)
		msgs, _ := svc.History(ctx)
		assert.Empty(t, msgs)
	})

	t.Run("Failure - concurrent send is rejected as busy", func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		slow := session.ResolverFunc[string, string](func(ctx context.Context, q string) (string, error) {
			close(started)
			<-release
			return "done", nil
		})
		svc, _, _ := setupChatService(t, slow)

		errCh := make(chan error, 1)
		go func() {
			_, err := svc.Send(ctx, "first")
			errCh <- err
		}()
		<-started

		_, err := svc.Send(ctx, "second")
		assert.ErrorIs(t, err, app_errors.ErrBusy)
		assert.ErrorIs(t, err, app_errors.ErrConflict)
		assert.Equal(t, "first", svc.Status().CurrentInput)

		close(release)
		require.NoError(t, <-errCh)
		msgs, _ := svc.History(ctx)
		assert.Len(t, msgs, 2)
	})

	t.Run("Failure - resolver error leaves history untouched", func(t *testing.T) {
		failing := session.ResolverFunc[string, string](func(context.Context, string) (string, error) {
			return "", errors.New("boom")
		})
		svc, _, _ := setupChatService(t, failing)

		_, err := svc.Send(ctx, "hello")
		assert.ErrorContains(t, err, "boom")
		msgs, _ := svc.History(ctx)
		assert.Empty(t, msgs)
		assert.Equal(t, "boom", svc.Status().Error)
	})
}

func TestChatService_SendVoice(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _, devices := setupChatService(t, resolver.NewDefaultKeyword())

		ex, err := svc.SendVoice(ctx, &service.VoiceMessageRequest{Transcript: " what about irrigation ", Outcome: capture.OutcomeOK})
		require.NoError(t, err)
		assert.Equal(t, "what about irrigation", ex.Question.Text)
		_, held := devices.Owner(capture.DeviceMicrophone)
		assert.False(t, held, "microphone must be released after capture")
	})

	t.Run("Failure - permission denied", func(t *testing.T) {
		svc, _, devices := setupChatService(t, resolver.NewDefaultKeyword())

		_, err := svc.SendVoice(ctx, &service.VoiceMessageRequest{Outcome: capture.OutcomeDenied})
		assert.ErrorIs(t, err, app_errors.ErrPermission)
		assert.Equal(t, session.StateIdle, svc.Status().State)
		_, held := devices.Owner(capture.DeviceMicrophone)
		assert.False(t, held)
	})

	t.Run("Failure - microphone held elsewhere", func(t *testing.T) {
		svc, _, devices := setupChatService(t, resolver.NewDefaultKeyword())
		handle, err := devices.Acquire(capture.DeviceMicrophone, "other")
		require.NoError(t, err)
		defer handle.Release()

		_, err = svc.SendVoice(ctx, &service.VoiceMessageRequest{Transcript: "hi"})
		assert.ErrorIs(t, err, app_errors.ErrConflict)
	})
}

func TestChatService_ClearHistory(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := setupChatService(t, resolver.NewDefaultKeyword())

	_, err := svc.Send(ctx, "soil")
	require.NoError(t, err)
	require.NoError(t, svc.ClearHistory(ctx))

	msgs, _ := svc.History(ctx)
	assert.Empty(t, msgs)
	_, err = store.Get(ctx, history.KeyChat)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestChatService_CloseRejectsLaterSends(t *testing.T) {
	svc, _, _ := setupChatService(t, resolver.NewDefaultKeyword())
	svc.Close()

	_, err := svc.Send(context.Background(), "hello")
	assert.ErrorIs(t, err, app_errors.ErrClosed)
}
