package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/red-box/internal/config"
	"github.com/MKhiriev/red-box/internal/logger"
	"github.com/MKhiriev/red-box/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewStorages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paths := config.NewVaultPaths(filepath.Join(t.TempDir(), "red_box_vault"))

	s, err := NewStorages(context.Background(), paths, mock.NewMockVoiceEncoder(ctrl), logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	info, err := os.Stat(paths.Root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())

	_, err = os.Stat(paths.AuditDSN)
	require.NoError(t, err)

	assert.NotNil(t, s.Enrollment)
	assert.NotNil(t, s.Entries)
	assert.NotNil(t, s.Audit)

	events, err := s.Audit.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
