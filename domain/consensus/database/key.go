package database

import (
	"github.com/cashnode/cashd/domain/consensus/model"
	"github.com/cashnode/cashd/infrastructure/db/database"
)

func dbKeyToDatabaseKey(key model.DBKey) *database.Key {
	if dbKey, ok := key.(dbKey); ok {
		return dbKey.key
	}
	return dbBucketToDatabaseBucket(key.Bucket()).Key(key.Suffix())
}

func dbBucketToDatabaseBucket(bucket model.DBBucket) *database.Bucket {
	if bucket, ok := bucket.(*dbBucket); ok {
		return bucket.bucket
	}
	return database.MakeBucket(bucket.Path())
}

type dbKey struct {
	key *database.Key
}

func (d dbKey) Bytes() []byte {
	return d.key.Bytes()
}

func (d dbKey) Bucket() model.DBBucket {
	return newDBBucket(d.key.Bucket())
}

func (d dbKey) Suffix() []byte {
	return d.key.Suffix()
}

func newDBKey(key *database.Key) model.DBKey {
	return dbKey{key: key}
}
