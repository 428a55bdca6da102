package errs

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	backend := func(code string) error {
		return Backend("op", "b", "k", minio.ErrorResponse{Code: code, StatusCode: 400})
	}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Missing key", backend("NoSuchKey"), fiber.StatusNotFound},
		{"Missing bucket", backend("NoSuchBucket"), fiber.StatusNotFound},
		{"Bucket taken", backend("BucketAlreadyExists"), fiber.StatusConflict},
		{"Bucket not empty", backend("BucketNotEmpty"), fiber.StatusConflict},
		{"Denied", backend("AccessDenied"), fiber.StatusForbidden},
		{"Bad name", backend("InvalidBucketName"), fiber.StatusBadRequest},
		{"Other backend", backend("InternalError"), fiber.StatusBadGateway},
		{"Transfer", Transfer("upload", "b", "k", errors.New("disk full")), fiber.StatusInternalServerError},
		{"Unclassified", errors.New("boom"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}
