package errs

import "github.com/gofiber/fiber/v2"

// Status maps err to the HTTP status a handler should answer with.
func Status(err error) int {
	switch {
	case IsBackend(err):
		switch Code(err) {
		case "NoSuchKey", "NoSuchBucket", "NoSuchUpload":
			return fiber.StatusNotFound
		case "BucketAlreadyExists", "BucketAlreadyOwnedByYou", "BucketNotEmpty":
			return fiber.StatusConflict
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return fiber.StatusForbidden
		case "InvalidBucketName":
			return fiber.StatusBadRequest
		}
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
