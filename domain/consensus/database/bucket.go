package database

import (
	"github.com/cashnode/cashd/domain/consensus/model"
	"github.com/cashnode/cashd/infrastructure/db/database"
)

// MakeBucket creates a new model.DBBucket using the given path
func MakeBucket(path []byte) model.DBBucket {
	return newDBBucket(database.MakeBucket(path))
}

type dbBucket struct {
	bucket *database.Bucket
}

func (d dbBucket) Bucket(bucketBytes []byte) model.DBBucket {
	return newDBBucket(d.bucket.Bucket(bucketBytes))
}

func (d dbBucket) Key(suffix []byte) model.DBKey {
	return newDBKey(d.bucket.Key(suffix))
}

func (d dbBucket) Path() []byte {
	return d.bucket.Path()
}

func newDBBucket(bucket *database.Bucket) model.DBBucket {
	return &dbBucket{bucket: bucket}
}
