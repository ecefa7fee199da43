package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JBorrsad/odoonto-mobile/internal/domain"
)

func newTestCache(t *testing.T) (*DirectoryCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewDirectoryCache(client, time.Minute), mr
}

func TestDirectoryCacheDoctorsRoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	_, ok, err := c.Doctors(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	doctors := []domain.Doctor{{ID: "D1", FullName: "Ana Ruiz", Specialty: "Endodoncia"}}
	require.NoError(t, c.SetDoctors(ctx, doctors))
	assert.True(t, mr.Exists("odoonto:directory:doctors"))

	got, ok, err := c.Doctors(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, doctors, got)

	mr.FastForward(2 * time.Minute)
	_, ok, err = c.Doctors(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDirectoryCachePatientsAndInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetPatients(ctx, []domain.Patient{{ID: "P1", FirstName: "Luis"}}))
	got, ok, err := c.Patients(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Luis", got[0].FirstName)

	require.NoError(t, c.Invalidate(ctx))
	_, ok, err = c.Patients(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDirectoryCacheCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("odoonto:directory:doctors", "not json"))

	_, ok, err := c.Doctors(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNilDirectoryCache(t *testing.T) {
	var c *DirectoryCache
	ctx := context.Background()

	_, ok, err := c.Doctors(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.SetDoctors(ctx, nil))
	assert.NoError(t, c.Invalidate(ctx))
}
