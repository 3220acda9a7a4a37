package deploymentstatestore

import (
	"sync"
	"testing"

	"github.com/cashnode/cashd/domain/consensus/database"
	"github.com/cashnode/cashd/domain/consensus/model"
	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"github.com/cashnode/cashd/infrastructure/db/database/ldb"
)

func prepareDBForTest(t *testing.T, testName string) (db model.DBManager, teardownFunc func()) {
	levelDB, err := ldb.NewInMemoryLevelDB()
	if err != nil {
		t.Fatalf("%s: NewInMemoryLevelDB unexpectedly failed: %s", testName, err)
	}
	teardownFunc = func() {
		err := levelDB.Close()
		if err != nil {
			t.Fatalf("%s: Close unexpectedly failed: %s", testName, err)
		}
	}
	return database.New(levelDB), teardownFunc
}

func hashForTest(b byte) *externalapi.DomainHash {
	return externalapi.NewDomainHashFromByteArray(&[externalapi.DomainHashSize]byte{b})
}

func TestFirstWriteWins(t *testing.T) {
	db, teardownFunc := prepareDBForTest(t, "TestFirstWriteWins")
	defer teardownFunc()

	store := New(db, "regtest", 10)
	hash := hashForTest(1)

	_, found, err := store.Get("csv", hash)
	if err != nil {
		t.Fatalf("TestFirstWriteWins: Get: %s", err)
	}
	if found {
		t.Fatalf("TestFirstWriteWins: found a state in an empty store")
	}

	written, err := store.Stage("csv", hash, model.ThresholdStarted)
	if err != nil {
		t.Fatalf("TestFirstWriteWins: Stage: %s", err)
	}
	if !written {
		t.Fatalf("TestFirstWriteWins: the first write was ignored")
	}
	written, err = store.Stage("csv", hash, model.ThresholdFailed)
	if err != nil {
		t.Fatalf("TestFirstWriteWins: Stage: %s", err)
	}
	if written {
		t.Fatalf("TestFirstWriteWins: the second write was not ignored")
	}

	state, found, err := store.Get("csv", hash)
	if err != nil {
		t.Fatalf("TestFirstWriteWins: Get: %s", err)
	}
	if !found || state != model.ThresholdStarted {
		t.Fatalf("TestFirstWriteWins: expected STARTED, got %s (found: %t)", state, found)
	}

	// The same block decides a different state for another deployment
	_, found, err = store.Get("testdummy", hash)
	if err != nil {
		t.Fatalf("TestFirstWriteWins: Get: %s", err)
	}
	if found {
		t.Fatalf("TestFirstWriteWins: states of different deployments collide")
	}

	stats := store.Stats()
	expectedStats := model.DeploymentStateStoreStats{Hits: 1, Misses: 2, Writes: 1, Ignored: 1}
	if stats != expectedStats {
		t.Fatalf("TestFirstWriteWins: expected stats %+v, got %+v", expectedStats, stats)
	}
}

func TestStatesOutliveTheCache(t *testing.T) {
	db, teardownFunc := prepareDBForTest(t, "TestStatesOutliveTheCache")
	defer teardownFunc()

	store := New(db, "regtest", 1)
	for i := byte(0); i < 5; i++ {
		_, err := store.Stage("csv", hashForTest(i), model.ThresholdLockedIn)
		if err != nil {
			t.Fatalf("TestStatesOutliveTheCache: Stage: %s", err)
		}
	}

	// A fresh store over the same database sees every state
	reopened := New(db, "regtest", 1)
	for i := byte(0); i < 5; i++ {
		state, found, err := reopened.Get("csv", hashForTest(i))
		if err != nil {
			t.Fatalf("TestStatesOutliveTheCache: Get: %s", err)
		}
		if !found || state != model.ThresholdLockedIn {
			t.Fatalf("TestStatesOutliveTheCache: block %d: expected LOCKED_IN, got %s (found: %t)",
				i, state, found)
		}
	}
}

func TestNetworksDoNotShareStates(t *testing.T) {
	db, teardownFunc := prepareDBForTest(t, "TestNetworksDoNotShareStates")
	defer teardownFunc()

	hash := hashForTest(9)
	regtestStore := New(db, "regtest", 10)
	_, err := regtestStore.Stage("csv", hash, model.ThresholdLockedIn)
	if err != nil {
		t.Fatalf("TestNetworksDoNotShareStates: Stage: %s", err)
	}

	simnetStore := New(db, "simnet", 10)
	_, found, err := simnetStore.Get("csv", hash)
	if err != nil {
		t.Fatalf("TestNetworksDoNotShareStates: Get: %s", err)
	}
	if found {
		t.Fatalf("TestNetworksDoNotShareStates: simnet sees a state stored by regtest")
	}
	written, err := simnetStore.Stage("csv", hash, model.ThresholdStarted)
	if err != nil || !written {
		t.Fatalf("TestNetworksDoNotShareStates: Stage on simnet: written %t, err %v", written, err)
	}

	state, found, err := New(db, "regtest", 10).Get("csv", hash)
	if err != nil || !found || state != model.ThresholdLockedIn {
		t.Fatalf("TestNetworksDoNotShareStates: regtest state changed to %s (found %t, err %v)",
			state, found, err)
	}
}

func TestMemoryOnlyStore(t *testing.T) {
	store := New(nil, "regtest", 4)
	hash := hashForTest(7)
	written, err := store.Stage("csv", hash, model.ThresholdActive)
	if err != nil || !written {
		t.Fatalf("TestMemoryOnlyStore: Stage: written %t, err %v", written, err)
	}
	state, found, err := store.Get("csv", hash)
	if err != nil || !found || state != model.ThresholdActive {
		t.Fatalf("TestMemoryOnlyStore: Get: got %s, found %t, err %v", state, found, err)
	}
}

func TestConcurrentStage(t *testing.T) {
	db, teardownFunc := prepareDBForTest(t, "TestConcurrentStage")
	defer teardownFunc()

	store := New(db, "regtest", 10)
	hash := hashForTest(3)

	const writers = 16
	results := make(chan bool, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			written, err := store.Stage("csv", hash, model.ThresholdStarted)
			if err != nil {
				t.Errorf("TestConcurrentStage: Stage: %s", err)
			}
			results <- written
		}()
	}
	wg.Wait()
	close(results)

	writes := 0
	for written := range results {
		if written {
			writes++
		}
	}
	if writes != 1 {
		t.Fatalf("TestConcurrentStage: expected exactly one write, got %d", writes)
	}
	if stats := store.Stats(); stats.Writes != 1 || stats.Ignored != writers-1 {
		t.Fatalf("TestConcurrentStage: unexpected stats %+v", stats)
	}
}
