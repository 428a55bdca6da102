package storage_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"s3dropbox/core/storage"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("InvalidEndpoint", func(t *testing.T) {
		cfg := storage.Config{Endpoint: "http://bad host:9000"}

		client, err := storage.NewClient(cfg)
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestClient_PresignIsLocal(t *testing.T) {
	client, err := storage.NewClient(storage.Config{
		Endpoint:  "localhost:9000",
		AccessKey: "testkey",
		SecretKey: "testsecret",
		Region:    "us-east-1",
	})
	assert.NoError(t, err)

	// Signing needs no server when the region is known.
	u, err := client.PresignedGetObject(t.Context(), "media", "clip.mp4", time.Hour, nil)
	assert.NoError(t, err)
	assert.Equal(t, "/media/clip.mp4", u.Path)
	assert.Equal(t, "3600", u.Query().Get("X-Amz-Expires"))

	assert.NotPanics(t, client.CloseIdleConnections)
}

func TestClient_PresignWithoutRegionMakesNoRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := storage.NewClient(storage.Config{
		Endpoint:  srv.URL,
		AccessKey: "testkey",
		SecretKey: "testsecret",
	})
	assert.NoError(t, err)

	u, err := client.PresignedGetObject(t.Context(), "media", "clip.mp4", time.Minute, nil)
	assert.NoError(t, err)
	assert.Contains(t, u.Query().Get("X-Amz-Credential"), storage.DefaultRegion)
	assert.Equal(t, int32(0), hits.Load())
}

func TestTransferConfig_PartSize(t *testing.T) {
	assert.Equal(t, uint64(16*1024*1024), storage.TransferConfig{PartSizeMB: 16}.PartSize())
	assert.Equal(t, uint64(0), storage.TransferConfig{}.PartSize())
	assert.Equal(t, uint64(5*1024*1024), storage.TransferConfig{PartSizeMB: 1}.PartSize())
	assert.Equal(t, uint64(5*1024*1024), storage.TransferConfig{PartSizeMB: 4}.PartSize())
}
