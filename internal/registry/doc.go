// Package registry holds the read-only set of data models known to the
// application together with their controllers.
//
// Models are described in YAML files (one or more documents per file) and
// loaded with [Registry.LoadDir] or [Registry.LoadFS]. Once loading is
// complete, [Registry.Link] resolves associations between models.
package registry
