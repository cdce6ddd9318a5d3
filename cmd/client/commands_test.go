package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/katla-sections/internal/adapter"
	"github.com/MKhiriev/katla-sections/internal/mock"
	"github.com/MKhiriev/katla-sections/models"
)

func TestRun_Commands(t *testing.T) {
	ctx := context.Background()
	updated := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		args    []string
		setup   func(a *mock.MockSectionsAdapter)
		wantOut string
	}{
		{
			name: "list empty",
			args: []string{"list"},
			setup: func(a *mock.MockSectionsAdapter) {
				a.EXPECT().List(ctx).Return(nil, nil)
			},
			wantOut: "[]\n",
		},
		{
			name: "get",
			args: []string{"get", "42"},
			setup: func(a *mock.MockSectionsAdapter) {
				a.EXPECT().Get(ctx, int64(42)).Return(models.HiveSection{ID: 42, Name: "A", LastUpdated: updated}, nil)
			},
			wantOut: "\"id\": 42",
		},
		{
			name: "create with code and hive",
			args: []string{"create", "Dairy", "DRY", "3"},
			setup: func(a *mock.MockSectionsAdapter) {
				a.EXPECT().Create(ctx, models.UpdateHiveSectionRequest{Name: "Dairy", Code: "DRY", StoreHiveID: 3}).
					Return(models.HiveSection{ID: 7, Name: "Dairy", Code: "DRY", StoreHiveID: 3}, nil)
			},
			wantOut: "\"code\": \"DRY\"",
		},
		{
			name: "update",
			args: []string{"update", "7", "Frozen"},
			setup: func(a *mock.MockSectionsAdapter) {
				a.EXPECT().Update(ctx, int64(7), models.UpdateHiveSectionRequest{Name: "Frozen"}).Return(nil)
			},
			wantOut: "section 7 updated\n",
		},
		{
			name: "status",
			args: []string{"status", "5", "true"},
			setup: func(a *mock.MockSectionsAdapter) {
				a.EXPECT().SetStatus(ctx, int64(5), true).Return(nil)
			},
			wantOut: "section 5 is_deleted=true\n",
		},
		{
			name: "delete",
			args: []string{"delete", "5"},
			setup: func(a *mock.MockSectionsAdapter) {
				a.EXPECT().Delete(ctx, int64(5)).Return(nil)
			},
			wantOut: "section 5 deleted\n",
		},
		{
			name: "version",
			args: []string{"version"},
			setup: func(a *mock.MockSectionsAdapter) {
				a.EXPECT().Version(ctx).Return("1.4.0", nil)
			},
			wantOut: "1.4.0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			a := mock.NewMockSectionsAdapter(ctrl)
			tt.setup(a)

			var out bytes.Buffer
			err := run(ctx, a, tt.args, &out)

			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}

func TestRun_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "unknown command", args: []string{"purge"}},
		{name: "get without id", args: []string{"get"}},
		{name: "get non numeric id", args: []string{"get", "abc"}},
		{name: "get zero id", args: []string{"get", "0"}},
		{name: "create without name", args: []string{"create"}},
		{name: "create bad hive", args: []string{"create", "A", "B", "x"}},
		{name: "status bad flag", args: []string{"status", "5", "maybe"}},
		{name: "list with args", args: []string{"list", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			a := mock.NewMockSectionsAdapter(ctrl)

			var out bytes.Buffer
			err := run(context.Background(), a, tt.args, &out)

			assert.Error(t, err)
			assert.Empty(t, out.String())
		})
	}
}

func TestRun_UnknownCommandShowsUsage(t *testing.T) {
	err := run(context.Background(), nil, []string{"purge"}, &bytes.Buffer{})

	assert.ErrorIs(t, err, errUnknownCommand)
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_AdapterErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockSectionsAdapter(ctrl)
	a.EXPECT().Delete(gomock.Any(), int64(5)).Return(adapter.ErrConflict)

	var out bytes.Buffer
	err := run(context.Background(), a, []string{"delete", "5"}, &out)

	assert.ErrorIs(t, err, adapter.ErrConflict)
	assert.Empty(t, out.String())
}
