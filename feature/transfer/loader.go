package transfer

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new transfer feature around an existing service.
func NewFeature(svc *Service, tempDir string) *Feature {
	return &Feature{service: svc, handler: NewHandler(svc, tempDir)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "transfer"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
