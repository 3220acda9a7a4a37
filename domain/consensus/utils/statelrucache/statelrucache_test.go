package statelrucache

import (
	"testing"

	"github.com/cashnode/cashd/domain/consensus/model"
	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
)

func TestLRUCache(t *testing.T) {
	hashes := make([]*externalapi.DomainHash, 4)
	for i := range hashes {
		hashes[i] = externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{byte(i)})
	}

	cache := New(2)
	cache.Add(NewKey("csv", hashes[0]), model.ThresholdStarted)
	cache.Add(NewKey("testdummy", hashes[0]), model.ThresholdFailed)

	state, ok := cache.Get(NewKey("csv", hashes[0]))
	if !ok || state != model.ThresholdStarted {
		t.Fatalf("TestLRUCache: expected STARTED for csv, got %s (found: %t)", state, ok)
	}
	state, ok = cache.Get(NewKey("testdummy", hashes[0]))
	if !ok || state != model.ThresholdFailed {
		t.Fatalf("TestLRUCache: expected FAILED for testdummy, got %s (found: %t)", state, ok)
	}

	for _, hash := range hashes[1:] {
		cache.Add(NewKey("csv", hash), model.ThresholdActive)
		if cache.Len() > 2 {
			t.Fatalf("TestLRUCache: cache grew to %d entries over its capacity", cache.Len())
		}
		if !cache.Has(NewKey("csv", hash)) {
			t.Fatalf("TestLRUCache: the entry just added was evicted")
		}
	}

	cache.Remove(NewKey("csv", hashes[3]))
	if cache.Has(NewKey("csv", hashes[3])) {
		t.Fatalf("TestLRUCache: removed entry is still cached")
	}
	cache.Clear()
	if cache.Len() != 0 {
		t.Fatalf("TestLRUCache: Clear left %d entries", cache.Len())
	}
}
