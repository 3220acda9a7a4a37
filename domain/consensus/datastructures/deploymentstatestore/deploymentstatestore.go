package deploymentstatestore

import (
	"sync"

	"github.com/cashnode/cashd/domain/consensus/database"
	"github.com/cashnode/cashd/domain/consensus/database/binaryserialization"
	"github.com/cashnode/cashd/domain/consensus/database/serialization"
	"github.com/cashnode/cashd/domain/consensus/model"
	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"github.com/cashnode/cashd/domain/consensus/utils/statelrucache"
	"go.uber.org/atomic"
)

var bucketName = []byte("deployment-states")

// deploymentStateStore represents a store of versionbits states. A state is
// written at most once per key: the first write wins and later writes are
// ignored, so concurrent recomputations of the same state are harmless.
type deploymentStateStore struct {
	mtx    sync.Mutex
	db     model.DBManager
	bucket model.DBBucket
	cache  *statelrucache.LRUCache

	hits    atomic.Uint64
	misses  atomic.Uint64
	writes  atomic.Uint64
	ignored atomic.Uint64
}

// New instantiates a new DeploymentStateStore. db may be nil, in which case
// states only live in the in-memory cache. States are kept under the given
// network's namespace, so several networks can share one database.
func New(db model.DBManager, network string, cacheSize int) model.DeploymentStateStore {
	return &deploymentStateStore{
		db:     db,
		bucket: database.MakeBucket([]byte(network)).Bucket(bucketName),
		cache:  statelrucache.New(cacheSize),
	}
}

// Get gets the state of the given deployment decided by the given block
func (dss *deploymentStateStore) Get(deploymentName string, blockHash *externalapi.DomainHash) (
	model.ThresholdState, bool, error) {

	dss.mtx.Lock()
	defer dss.mtx.Unlock()

	state, found, err := dss.get(deploymentName, blockHash)
	if err != nil {
		return 0, false, err
	}
	if found {
		dss.hits.Inc()
	} else {
		dss.misses.Inc()
	}
	return state, found, nil
}

func (dss *deploymentStateStore) get(deploymentName string, blockHash *externalapi.DomainHash) (
	model.ThresholdState, bool, error) {

	cacheKey := statelrucache.NewKey(deploymentName, blockHash)
	if state, ok := dss.cache.Get(cacheKey); ok {
		return state, true, nil
	}
	if dss.db == nil {
		return 0, false, nil
	}

	serializedState, err := dss.db.Get(dss.key(deploymentName, blockHash))
	if err != nil {
		if database.IsNotFoundError(err) {
			return 0, false, nil
		}
		return 0, false, err
	}
	state, err := dss.deserializeState(serializedState, deploymentName, blockHash)
	if err != nil {
		return 0, false, err
	}
	dss.cache.Add(cacheKey, state)
	return state, true, nil
}

// Stage stores the state of the given deployment decided by the given
// block, unless a state is already stored for them. It returns whether the
// state was written.
func (dss *deploymentStateStore) Stage(deploymentName string, blockHash *externalapi.DomainHash,
	state model.ThresholdState) (bool, error) {

	dss.mtx.Lock()
	defer dss.mtx.Unlock()

	existing, found, err := dss.get(deploymentName, blockHash)
	if err != nil {
		return false, err
	}
	if found {
		if existing != state {
			log.Warnf("Ignoring state %s for deployment %s at block %s: %s is already stored",
				state, deploymentName, blockHash, existing)
		}
		dss.ignored.Inc()
		return false, nil
	}

	if dss.db != nil {
		err := dss.db.Put(dss.key(deploymentName, blockHash), dss.serializeState(deploymentName, blockHash, state))
		if err != nil {
			return false, err
		}
	}
	dss.cache.Add(statelrucache.NewKey(deploymentName, blockHash), state)
	dss.writes.Inc()
	log.Tracef("Stored state %s for deployment %s at block %s", state, deploymentName, blockHash)
	return true, nil
}

// Stats returns the counters of the store
func (dss *deploymentStateStore) Stats() model.DeploymentStateStoreStats {
	return model.DeploymentStateStoreStats{
		Hits:    dss.hits.Load(),
		Misses:  dss.misses.Load(),
		Writes:  dss.writes.Load(),
		Ignored: dss.ignored.Load(),
	}
}

func (dss *deploymentStateStore) key(deploymentName string, blockHash *externalapi.DomainHash) model.DBKey {
	return dss.bucket.Bucket([]byte(deploymentName)).Key(binaryserialization.SerializeHash(blockHash))
}

func (dss *deploymentStateStore) serializeState(deploymentName string, blockHash *externalapi.DomainHash,
	state model.ThresholdState) []byte {

	return serialization.DeploymentStateToDBDeploymentState(deploymentName, blockHash, state).Marshal()
}

func (dss *deploymentStateStore) deserializeState(serializedState []byte, deploymentName string,
	blockHash *externalapi.DomainHash) (model.ThresholdState, error) {

	dbState := &serialization.DbDeploymentState{}
	err := dbState.Unmarshal(serializedState)
	if err != nil {
		return 0, err
	}
	return serialization.DBDeploymentStateToDeploymentState(dbState, deploymentName, blockHash)
}
