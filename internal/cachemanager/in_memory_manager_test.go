package cachemanager

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewInMemoryCacheManager(t *testing.T) {
	require.NotPanics(t, func() {
		NewInMemoryCacheManager[string, string]("test", NoExpiration, DefaultCleanupInterval)
	})
}

type ExampleStruct struct {
	ID   int
	Name string
}

func TestNewInMemoryCacheManager_GetExistingValue_StructType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, ExampleStruct]("factor-cache", NoExpiration, DefaultCleanupInterval)
	example := ExampleStruct{
		Name: "apple",
	}
	cache.Set("ex:1", example, NoExpiration)

	got, ok := cache.Get("ex:1")
	require.True(t, ok)
	require.Equal(t, example, got)
}

func TestNewInMemoryCacheManager_GetWithNoExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("factor-cache", NoExpiration, DefaultCleanupInterval)

	got, ok := cache.Get("kg->g")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestNewInMemoryCacheManager_GetWithExistingInvalidValueType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("factor-cache", NoExpiration, DefaultCleanupInterval)

	cache.cache.Set("kg->g", 123, NoExpiration)

	got, ok := cache.Get("kg->g")
	require.False(t, ok)
	require.Empty(t, got)
}

type pairKey string

func TestNewInMemoryCacheManager_NamedKeyType(t *testing.T) {
	cache := NewInMemoryCacheManager[pairKey, int]("factor-cache", NoExpiration, DefaultCleanupInterval)
	cache.Set(pairKey("a->b"), 7, NoExpiration)

	got, ok := cache.Get("a->b")
	require.True(t, ok)
	require.Equal(t, 7, got)
}

func TestNewInMemoryCacheManager_GetMultipleWithNoKeysDoesNothing(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("factor-cache", NoExpiration, DefaultCleanupInterval)

	got, ok := cache.GetMultiple([]string{})
	require.False(t, ok)
	require.Nil(t, got)
}

func TestNewInMemoryCacheManager_GetMultipleCacheHit(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("factor-cache", NoExpiration, DefaultCleanupInterval)

	cache.Set("food", "apple", NoExpiration)
	cache.Set("drink", "juice", NoExpiration)

	got, ok := cache.GetMultiple([]string{"food", "drink", "missing"})
	require.True(t, ok)
	require.Equal(t, map[string]string{"food": "apple", "drink": "juice"}, got)
}

func TestNewInMemoryCacheManager_GetMultipleCacheMiss(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("factor-cache", NoExpiration, DefaultCleanupInterval)

	got, ok := cache.GetMultiple([]string{"food", "drink", "missing"})
	require.False(t, ok)
	require.Nil(t, got)
}

func TestNewInMemoryCacheManager_DeleteExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("factor-cache", NoExpiration, DefaultCleanupInterval)
	cache.Set("food", "apple", NoExpiration)

	cache.Delete("food")

	got, ok := cache.Get("food")
	require.False(t, ok)
	require.Equal(t, "", got)
}

func TestNewInMemoryCacheManager_FlushAndCount(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("factor-cache", NoExpiration, DefaultCleanupInterval)
	cache.Set("food", "apple", NoExpiration)
	cache.Set("drink", "juice", NoExpiration)
	require.Equal(t, 2, cache.ItemCount())

	cache.Flush()

	require.Equal(t, 0, cache.ItemCount())
	_, ok := cache.Get("food")
	require.False(t, ok)
}
