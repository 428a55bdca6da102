package objects

import (
	"encoding/json"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"s3dropbox/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, *Service) {
	app := fiber.New()
	svc, mockClient := newTestService(t)
	NewHandler(svc, 24*time.Hour).RegisterRoutes(app)
	return app, mockClient, svc
}

func TestHandleListObjects(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("ListObjects", mock.Anything, "media", mock.Anything).Return(listing(
		minio.ObjectInfo{Key: "b.mp4", Size: 2},
		minio.ObjectInfo{Key: "a.mp4", Size: 1},
	))

	resp, err := app.Test(httptest.NewRequest("GET", "/buckets/media/objects", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Count   int             `json:"count"`
		Objects []StorageObject `json:"objects"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, "a.mp4", body.Objects[0].Key)
}

func TestHandleListObjects_MissingBucket(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("ListObjects", mock.Anything, "missing", mock.Anything).Return(listing(
		minio.ObjectInfo{Err: minio.ErrorResponse{Code: "NoSuchBucket", StatusCode: 404}},
	))

	resp, err := app.Test(httptest.NewRequest("GET", "/buckets/missing/objects", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleObjectExists(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("ListObjects", mock.Anything, "media", minio.ListObjectsOptions{Prefix: "clip", Recursive: true}).
		Return(listing(minio.ObjectInfo{Key: "clip.mp4"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/buckets/media/objects/exists?key=clip", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["exists"])

	resp, err = app.Test(httptest.NewRequest("GET", "/buckets/media/objects/exists", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleDeleteObject(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("RemoveObject", mock.Anything, "media", "clip.mp4", mock.Anything).Return(nil)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/buckets/media/objects?key=clip.mp4", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	mockClient.AssertExpectations(t)
}

func TestHandlePresignedURL(t *testing.T) {
	app, mockClient, svc := setupTestApp(t)
	signed, _ := url.Parse("https://s3.example.com/media/clip.mp4?X-Amz-Expires=7200")
	mockClient.On("PresignedGetObject", mock.Anything, "media", "clip.mp4", 2*time.Hour, mock.Anything).Return(signed, nil)

	expires := svc.now().Add(2 * time.Hour).Format(time.RFC3339)
	resp, err := app.Test(httptest.NewRequest("GET", "/buckets/media/objects/url?key=clip.mp4&expires="+url.QueryEscape(expires), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, signed.String(), body["url"])
}

func TestHandlePresignedURL_TTL(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	signed, _ := url.Parse("https://s3.example.com/media/clip.mp4")
	mockClient.On("PresignedGetObject", mock.Anything, "media", "clip.mp4", 90*time.Second, mock.Anything).Return(signed, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/buckets/media/objects/url?key=clip.mp4&ttl=90", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandlePresignedURL_BadRequests(t *testing.T) {
	app, _, svc := setupTestApp(t)

	tests := []struct {
		name  string
		query string
	}{
		{"Missing key", "expires=" + url.QueryEscape(svc.now().Add(time.Hour).Format(time.RFC3339))},
		{"Bad format", "key=clip.mp4&expires=tomorrow"},
		{"In the past", "key=clip.mp4&expires=" + url.QueryEscape(svc.now().Add(-time.Hour).Format(time.RFC3339))},
		{"Beyond max", "key=clip.mp4&ttl=" + "172800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", "/buckets/media/objects/url?"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}
