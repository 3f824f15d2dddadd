package api_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"agribrain/backend/internal/api"
	"agribrain/backend/internal/capture"
	app_errors "agribrain/backend/internal/errors"
	"agribrain/backend/internal/interfaces/mocks"
	"agribrain/backend/internal/model"
)

func setupAnalysisHandler(t *testing.T) (*api.AnalysisHandler, *mocks.MockAnalysisService) {
	mockSvc := mocks.NewMockAnalysisService(t)
	return api.NewAnalysisHandler(mockSvc), mockSvc
}

func multipartImage(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestAnalysisHandler_UploadImage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// ARRANGE
		handler, mockSvc := setupAnalysisHandler(t)
		record := &model.AnalysisRecord{ID: "rec-1", Result: model.AnalysisResult{Status: "Healthy", Confidence: 0.94}}
		mockSvc.On("AnalyzeUpload", mock.Anything, "leaf.png", int64(4), mock.Anything).Return(record, nil).Once()

		body, contentType := multipartImage(t, "image", "leaf.png", []byte("data"))
		req := httptest.NewRequest(http.MethodPost, "/v1/analysis/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		// ACT
		handler.UploadImage(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"Healthy"`)
	})

	t.Run("Failure - missing file field", func(t *testing.T) {
		handler, _ := setupAnalysisHandler(t)
		body, contentType := multipartImage(t, "other", "leaf.png", []byte("data"))
		req := httptest.NewRequest(http.MethodPost, "/v1/analysis/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.UploadImage(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - body over the limit", func(t *testing.T) {
		handler, mockSvc := setupAnalysisHandler(t)
		mockSvc.On("AnalyzeUpload", mock.Anything, "", mock.MatchedBy(func(size int64) bool {
			return size > capture.MaxImageSize
		}), mock.Anything).Return(nil, fmt.Errorf("%w: too big", app_errors.ErrFileTooLarge)).Once()

		body, contentType := multipartImage(t, "image", "huge.png", make([]byte, capture.MaxImageSize+2<<20))
		req := httptest.NewRequest(http.MethodPost, "/v1/analysis/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.UploadImage(rr, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})

	t.Run("Failure - service rejects format", func(t *testing.T) {
		handler, mockSvc := setupAnalysisHandler(t)
		mockSvc.On("AnalyzeUpload", mock.Anything, "notes.txt", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: text/plain is not an image", app_errors.ErrInvalidFormat)).Once()

		body, contentType := multipartImage(t, "image", "notes.txt", []byte("hello"))
		req := httptest.NewRequest(http.MethodPost, "/v1/analysis/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.UploadImage(rr, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)
	})
}

func TestAnalysisHandler_Snapshot(t *testing.T) {
	t.Run("Failure - file too large", func(t *testing.T) {
		handler, mockSvc := setupAnalysisHandler(t)
		mockSvc.On("AnalyzeSnapshot", mock.Anything, mock.Anything).Return(nil, app_errors.ErrFileTooLarge).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/analysis/snapshot", strings.NewReader(`{"image":"data:image/png;base64,AAAA"}`))
		rr := httptest.NewRecorder()
		handler.Snapshot(rr, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})

	t.Run("Failure - missing image", func(t *testing.T) {
		handler, _ := setupAnalysisHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/analysis/snapshot", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		handler.Snapshot(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
