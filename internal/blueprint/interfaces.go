package blueprint

import "github.com/MKhiriev/blueprint-utils/models"

// ModelRegistry is the read side of the model registry the hook binds from.
type ModelRegistry interface {
	Models() []*models.Model
	Model(identity string) (*models.Model, bool)
	Controller(identity string) (*models.Controller, bool)
}
