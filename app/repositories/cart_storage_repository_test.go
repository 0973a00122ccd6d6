package repositories

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Rakhulsr/go-fitstore/app/utils/calc"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStorage_RoundTrip(t *testing.T) {
	kv := NewMemoryStorage().Scope("visitor")
	storage, _ := newTestCartStorage(kv)
	cart := sampleCart()

	require.NoError(t, storage.Save(cart))
	loaded := storage.Load()

	assert.True(t, cart.Equal(loaded), "loaded %+v", loaded)
}

func TestCartStorage_RoundTripKeepsProductTimestamps(t *testing.T) {
	kv := NewMemoryStorage().Scope("visitor")
	storage, _ := newTestCartStorage(kv)
	cart := sampleCart()
	created := time.Date(2024, 3, 9, 10, 30, 0, 0, time.UTC)
	cart.Items[0].Product.CreatedAt = created
	cart.Items[0].Product.UpdatedAt = created.Add(48 * time.Hour)

	require.NoError(t, storage.Save(cart))
	loaded := storage.Load()

	require.Len(t, loaded.Items, 2)
	assert.True(t, created.Equal(loaded.Items[0].Product.CreatedAt))
	assert.True(t, created.Add(48*time.Hour).Equal(loaded.Items[0].Product.UpdatedAt))
	assert.True(t, loaded.Items[1].Product.CreatedAt.IsZero())
	assert.True(t, cart.Equal(loaded))
}

func TestCartStorage_WritesVersionedSnapshot(t *testing.T) {
	kv := NewMemoryStorage().Scope("visitor")
	storage, _ := newTestCartStorage(kv)
	require.NoError(t, storage.Save(calc.EmptyCart()))

	raw, ok, err := kv.GetItem(CartStorageKey)
	require.NoError(t, err)
	require.True(t, ok)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.EqualValues(t, CartSchemaVersion, doc["version"])
	assert.Equal(t, []interface{}{}, doc["items"])
	assert.Equal(t, "9.99", doc["shipping"])
}

func TestCartStorage_AbsentKeyLoadsEmpty(t *testing.T) {
	storage, hook := newTestCartStorage(NewMemoryStorage().Scope("visitor"))

	assert.True(t, calc.EmptyCart().Equal(storage.Load()))
	assert.Empty(t, hook.AllEntries())
}

func TestCartStorage_CorruptEntriesLoadEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{not json"},
		{"wrong shape", `{"items":"many"}`},
		{"zero quantity", `{"version":1,"items":[{"product":{"id":"a","price":"1"},"quantity":0}]}`},
		{"missing product id", `{"version":1,"items":[{"product":{"price":"1"},"quantity":1}]}`},
		{"unknown size", `{"version":1,"items":[{"product":{"id":"a","price":"1"},"quantity":1,"size":"XXXL"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewMemoryStorage().Scope("visitor")
			require.NoError(t, kv.SetItem(CartStorageKey, tt.raw))
			storage, hook := newTestCartStorage(kv)

			assert.True(t, calc.EmptyCart().Equal(storage.Load()))
			require.NotNil(t, hook.LastEntry())
			assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
		})
	}
}

func TestCartStorage_LegacyUnversionedEntryIsAccepted(t *testing.T) {
	kv := NewMemoryStorage().Scope("visitor")
	require.NoError(t, kv.SetItem(CartStorageKey,
		`{"items":[{"product":{"id":"a","name":"A","price":"10"},"quantity":3}],"subtotal":"30","shipping":"9.99","tax":"2.4","total":"42.39"}`))
	storage, _ := newTestCartStorage(kv)

	cart := storage.Load()

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.ItemCount())
	assert.Equal(t, "42.39", cart.Total.StringFixed(2))
}

func TestCartStorage_UnsupportedVersionIsWiped(t *testing.T) {
	kv := NewMemoryStorage().Scope("visitor")
	require.NoError(t, kv.SetItem(CartStorageKey, `{"version":2,"items":[]}`))
	storage, _ := newTestCartStorage(kv)

	assert.True(t, calc.EmptyCart().Equal(storage.Load()))

	_, ok, err := kv.GetItem(CartStorageKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCartStorage_TamperedTotalsAreRederived(t *testing.T) {
	kv := NewMemoryStorage().Scope("visitor")
	require.NoError(t, kv.SetItem(CartStorageKey,
		`{"version":1,"items":[{"product":{"id":"a","price":"100"},"quantity":2}],"subtotal":"0.01","shipping":"0","tax":"0","total":"0.01"}`))
	storage, _ := newTestCartStorage(kv)

	cart := storage.Load()

	assert.Equal(t, "200.00", cart.Subtotal.StringFixed(2))
	assert.Equal(t, "216.00", cart.Total.StringFixed(2))
}

func TestCartStorage_ReadFailureLoadsEmpty(t *testing.T) {
	storage, hook := newTestCartStorage(brokenStore{})

	assert.True(t, calc.EmptyCart().Equal(storage.Load()))
	require.NotNil(t, hook.LastEntry())
	assert.Error(t, storage.Save(sampleCart()))
}
