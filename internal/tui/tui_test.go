package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/blueprint-utils/models"
)

func TestRenderCount(t *testing.T) {
	out := RenderCount("users COUNT", 42000)

	assert.Contains(t, out, "users COUNT")
	assert.Contains(t, out, "42000")
}

func TestRenderSchema_KeepsOrderAndRules(t *testing.T) {
	attrs := models.Attributes{
		{Name: "name", Type: "string", Required: true, MaxLength: 50},
		{Name: "email", Type: "email", Unique: true, Rules: map[string]any{"isEmail": true}},
		{Name: "role", Type: "string", Enum: []string{"admin", "member"}},
	}

	out := RenderSchema("user", attrs)

	assert.Contains(t, out, "user SCHEMA")
	assert.Contains(t, out, "isEmail=true")
	assert.Contains(t, out, "admin, member")
	assert.Less(t, strings.Index(out, "name"), strings.Index(out, "email"))
	assert.Less(t, strings.Index(out, "email"), strings.Index(out, "role"))
}

func TestRenderAssociations(t *testing.T) {
	out := RenderAssociations("user", []models.Association{
		{Alias: "clients", Type: "collection", Collection: "client", Via: "user"},
		{Alias: "profile", Type: "model", Model: "profile"},
	})

	assert.Contains(t, out, "clients")
	assert.Contains(t, out, "profile")
	assert.Contains(t, out, "VIA")
}

func TestRender_EmptyPages(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{name: "associations", out: RenderAssociations("audit", nil)},
		{name: "filters", out: RenderFilters("audit", nil)},
		{name: "titles", out: RenderTitles("audit", map[string]string{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.out, "audit")
			assert.Contains(t, tt.out, "-")
			assert.NotContains(t, tt.out, "NAME")
		})
	}
}

func TestRenderFilters(t *testing.T) {
	out := RenderFilters("user", []models.Filter{{Name: "age", Text: "Age", Type: "integer", MinLength: 1}})

	assert.Contains(t, out, "Age")
	assert.Contains(t, out, "integer")
}

func TestRenderTitles_Sorted(t *testing.T) {
	out := RenderTitles("user", map[string]string{"name": "Name", "email": "E-mail"})

	assert.Less(t, strings.Index(out, "E-mail"), strings.Index(out, "Name"))
}

func TestRenderBuildInfo(t *testing.T) {
	out := RenderBuildInfo(models.NewAppBuildInfo("1.0.0", "", "abc"), "")

	assert.Contains(t, out, "Client version: 1.0.0")
	assert.Contains(t, out, "Build date: N/A")
	assert.Contains(t, out, "Build commit: abc")
	assert.Contains(t, out, "Server version: N/A")
}

func TestRenderError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: "server is unreachable"},
		{err: fmt.Errorf("wrapped: %w", errors.New("not found: record not found")), want: "record not found"},
	}

	for _, tt := range tests {
		assert.Contains(t, RenderError(tt.err), tt.want)
	}
	assert.Empty(t, humanizeServerUnavailableError(nil))
}
