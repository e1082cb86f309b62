package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

type cachedObject struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	var missing cachedObject
	found, err := GetJSON(ctx, "object:1", &missing)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "object:1", cachedObject{ID: 1, Name: "M31"}, ObjectTTL))

	var got cachedObject
	found, err = GetJSON(ctx, "object:1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "M31", got.Name)
}

func TestGetSetJSON_NilClientIsNoop(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "object:1", cachedObject{ID: 1}, ObjectTTL))

	var got cachedObject
	found, err := GetJSON(ctx, "object:1", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *cachedObject) func() error {
		return func() error {
			fetches++
			*dest = cachedObject{ID: 7, Name: "NGC 7000"}
			return nil
		}
	}

	var first cachedObject
	require.NoError(t, Aside(ctx, ObjectKey(7), &first, ObjectTTL, fetch(&first)))
	assert.Equal(t, 1, fetches)
	assert.Equal(t, "NGC 7000", first.Name)

	var second cachedObject
	require.NoError(t, Aside(ctx, ObjectKey(7), &second, ObjectTTL, fetch(&second)))
	assert.Equal(t, 1, fetches, "second lookup should be served from cache")
	assert.Equal(t, "NGC 7000", second.Name)
}

func TestAside_FetchErrorNotCached(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	var dest cachedObject
	err := Aside(ctx, "object:9", &dest, ObjectTTL, func() error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	found, err := GetJSON(ctx, "object:9", &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestResolveKeyNormalization(t *testing.T) {
	assert.Equal(t, "resolve:m31", ResolveKey("M31"))
	assert.Equal(t, "resolve:m31", ResolveKey("  m31  "))
	assert.Equal(t, "resolve:andromeda galaxy", ResolveKey("Andromeda Galaxy"))
	assert.Equal(t, ResolveKey("NGC 224"), ResolveKey("ngc 224"))
}

func TestInvalidateResolutions(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, ResolveKey("M31"), cachedObject{ID: 1}, ResolveTTL))
	require.NoError(t, SetJSON(ctx, ResolveKey("NGC 224"), cachedObject{ID: 2}, ResolveTTL))
	require.NoError(t, SetJSON(ctx, ObjectKey(1), cachedObject{ID: 1}, ObjectTTL))

	InvalidateResolutions(ctx)

	assert.False(t, mr.Exists("resolve:m31"))
	assert.False(t, mr.Exists("resolve:ngc 224"))
	assert.True(t, mr.Exists("object:1"), "only resolver entries are swept")
}

func TestInvalidateObject(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, ObjectKey(3), cachedObject{ID: 3}, ObjectTTL))
	require.NoError(t, SetJSON(ctx, ResolveKey("M45"), cachedObject{ID: 3}, ResolveTTL))

	InvalidateObject(ctx, 3)

	assert.False(t, mr.Exists("object:3"))
	assert.False(t, mr.Exists("resolve:m45"))
}
