package blueprint

import (
	"net/http"

	"github.com/MKhiriev/blueprint-utils/internal/criteria"
	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/internal/utils"
	"github.com/MKhiriev/blueprint-utils/models"
)

// count answers GET /<model>/count.
func (h *Hook) count(w http.ResponseWriter, r *http.Request) {
	m, err := h.resolveModel(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := criteria.Parse(r, m)
	if err != nil {
		writeError(w, r, err)
		return
	}

	n, err := h.service.Count(r.Context(), m, c)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.CountResponse{Count: n})
}

func (h *Hook) associations(w http.ResponseWriter, r *http.Request) {
	m, err := h.resolveModel(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	associations := m.Associations
	if associations == nil {
		associations = []models.Association{}
	}

	writeJSON(w, r, models.AssociationsResponse{Associations: associations})
}

func (h *Hook) schema(w http.ResponseWriter, r *http.Request) {
	m, err := h.resolveModel(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.SchemaResponse{Schema: m.Attributes})
}

func (h *Hook) filters(w http.ResponseWriter, r *http.Request) {
	m, err := h.resolveModel(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.FiltersResponse{Filters: Filters(m)})
}

func (h *Hook) titles(w http.ResponseWriter, r *http.Request) {
	m, err := h.resolveModel(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.TitlesResponse{Titles: Titles(m)})
}

// associationCount answers GET /<model>/{id}/<collection>/count.
func (h *Hook) associationCount(w http.ResponseWriter, r *http.Request) {
	m, err := h.resolveModel(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := criteria.Parse(r, m)
	if err != nil {
		writeError(w, r, err)
		return
	}

	opts, _ := OptionsFromRequest(r)
	n, err := h.service.CountAssociation(r.Context(), m, c, opts.Alias)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.CountResponse{Count: n})
}

// Filters lists the filterable fields of m in declaration order. Fields
// without a matching attribute, and protected attributes, are left out.
func Filters(m *models.Model) []models.Filter {
	filters := make([]models.Filter, 0, len(m.Fields))
	for _, f := range m.Fields {
		if !f.Detailed || !f.Filter {
			continue
		}

		attr, ok := m.Attributes.Get(f.Name)
		if !ok || attr.Protected {
			continue
		}

		filters = append(filters, models.Filter{
			Name:      f.Name,
			Text:      f.Title,
			Type:      attr.Type,
			MinLength: attr.MinLength,
			MaxLength: attr.MaxLength,
			Enum:      attr.Enum,
		})
	}
	return filters
}

// Titles maps every field of m shown as a column to its title.
func Titles(m *models.Model) map[string]string {
	titles := make(map[string]string)
	for _, f := range m.Fields {
		if f.Detailed && f.Column {
			titles[f.Name] = f.Title
		}
	}
	return titles
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "blueprint.writeJSON").Msg("error writing response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("blueprint request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("blueprint request rejected")
	}

	_, _ = utils.WriteError(w, err.Error(), status)
}
