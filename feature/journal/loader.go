package journal

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	repo    *Repository
	handler *Handler
}

// NewFeature creates a new journal feature.
func NewFeature(repo *Repository) *Feature {
	return &Feature{repo: repo, handler: NewHandler(repo)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "journal"
}

// IsEnabled reports whether a database backs the journal.
func (f *Feature) IsEnabled() bool {
	return f.repo.Enabled()
}

// Load migrates the journal table and registers the routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.repo.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
