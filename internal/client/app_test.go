package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/blueprint-utils/internal/adapter"
	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/internal/mock"
	"github.com/MKhiriev/blueprint-utils/models"
)

func newTestApp(t *testing.T) (*App, *mock.MockBlueprintClient, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	bc := mock.NewMockBlueprintClient(ctrl)
	var out bytes.Buffer

	return NewApp(bc, models.NewAppBuildInfo("1.0.0", "", ""), &out, logger.Nop()), bc, &out
}

func TestRun_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", args: nil, wantErr: ErrUsage},
		{name: "unknown command", args: []string{"drop"}, wantErr: ErrUnknownCommand},
		{name: "count without model", args: []string{"count"}, wantErr: ErrUsage},
		{name: "schema with extra args", args: []string{"schema", "user", "x"}, wantErr: ErrUsage},
		{name: "version with args", args: []string{"version", "x"}, wantErr: ErrUsage},
		{name: "association count missing collection", args: []string{"association-count", "user", "1"}, wantErr: ErrUsage},
		{name: "inspect without models", args: []string{"inspect"}, wantErr: ErrUsage},
		{name: "where not json", args: []string{"count", "user", "age>1"}, wantErr: ErrInvalidWhere},
		{name: "where is array", args: []string{"count", "user", "[1]"}, wantErr: ErrInvalidWhere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t)

			err := app.Run(context.Background(), tt.args)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRun_Count(t *testing.T) {
	app, bc, out := newTestApp(t)
	bc.EXPECT().
		Count(gomock.Any(), "users", adapter.Where{"age": map[string]any{">=": float64(18)}}).
		Return(int64(42), nil)

	err := app.Run(context.Background(), []string{"count", "users", `{"age":{">=":18}}`})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "users COUNT")
	assert.Contains(t, out.String(), "42")
}

func TestRun_AssociationCount(t *testing.T) {
	app, bc, out := newTestApp(t)
	bc.EXPECT().AssociationCount(gomock.Any(), "users", "7", "clients", adapter.Where(nil)).Return(int64(3), nil)

	err := app.Run(context.Background(), []string{"association-count", "users", "7", "clients"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "users 7 clients COUNT")
}

func TestRun_Version(t *testing.T) {
	app, bc, out := newTestApp(t)
	bc.EXPECT().Version(gomock.Any()).Return("2.0.0", nil)

	require.NoError(t, app.Run(context.Background(), []string{"version"}))

	assert.Contains(t, out.String(), "Client version: 1.0.0")
	assert.Contains(t, out.String(), "Server version: 2.0.0")
}

func TestRun_Descriptors(t *testing.T) {
	app, bc, out := newTestApp(t)
	bc.EXPECT().Associations(gomock.Any(), "user").Return([]models.Association{{Alias: "clients", Type: "collection"}}, nil)
	bc.EXPECT().Schema(gomock.Any(), "user").Return(models.Attributes{{Name: "email", Type: "email"}}, nil)
	bc.EXPECT().Filters(gomock.Any(), "user").Return([]models.Filter{{Name: "email", Text: "E-mail"}}, nil)
	bc.EXPECT().Titles(gomock.Any(), "user").Return(map[string]string{"email": "E-mail"}, nil)

	for _, cmd := range []string{"associations", "schema", "filters", "titles"} {
		require.NoError(t, app.Run(context.Background(), []string{cmd, "user"}), cmd)
	}

	assert.Contains(t, out.String(), "clients")
	assert.Contains(t, out.String(), "user SCHEMA")
	assert.Contains(t, out.String(), "user FILTERS")
	assert.Contains(t, out.String(), "user TITLES")
}

func TestRun_ClientError(t *testing.T) {
	app, bc, out := newTestApp(t)
	bc.EXPECT().Schema(gomock.Any(), "ghost").Return(nil, adapter.ErrNotFound)

	err := app.Run(context.Background(), []string{"schema", "ghost"})

	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Empty(t, out.String())
}

func TestRun_Inspect(t *testing.T) {
	app, bc, out := newTestApp(t)
	for _, model := range []string{"user", "client"} {
		bc.EXPECT().Count(gomock.Any(), model, adapter.Where(nil)).Return(int64(1), nil)
		bc.EXPECT().Associations(gomock.Any(), model).Return(nil, nil)
		bc.EXPECT().Schema(gomock.Any(), model).Return(models.Attributes{}, nil)
		bc.EXPECT().Filters(gomock.Any(), model).Return(nil, nil)
		bc.EXPECT().Titles(gomock.Any(), model).Return(map[string]string{}, nil)
	}

	require.NoError(t, app.Run(context.Background(), []string{"inspect", "user", "client"}))

	assert.Contains(t, out.String(), "user SCHEMA")
	assert.Contains(t, out.String(), "client SCHEMA")
}

func TestRun_InspectCollectsErrors(t *testing.T) {
	app, bc, _ := newTestApp(t)
	errDown := errors.New("down")
	bc.EXPECT().Count(gomock.Any(), "user", adapter.Where(nil)).Return(int64(0), errDown)
	bc.EXPECT().Associations(gomock.Any(), "user").Return(nil, nil)
	bc.EXPECT().Schema(gomock.Any(), "user").Return(nil, adapter.ErrForbidden)
	bc.EXPECT().Filters(gomock.Any(), "user").Return(nil, nil)
	bc.EXPECT().Titles(gomock.Any(), "user").Return(nil, nil)

	err := app.Run(context.Background(), []string{"inspect", "user"})

	require.Error(t, err)
	assert.ErrorIs(t, err, errDown)
	assert.ErrorIs(t, err, adapter.ErrForbidden)
	assert.Contains(t, err.Error(), "count user")
}
