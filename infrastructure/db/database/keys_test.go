package database

import (
	"bytes"
	"testing"
)

func TestBucketPath(t *testing.T) {
	tests := []struct {
		bucketByteSlices [][]byte
		expectedPath     []byte
	}{
		{
			bucketByteSlices: [][]byte{[]byte("hello")},
			expectedPath:     []byte("hello/"),
		},
		{
			bucketByteSlices: [][]byte{[]byte("hello"), []byte("world")},
			expectedPath:     []byte("hello/world/"),
		},
	}

	for _, test := range tests {
		// Build a result using the MakeBucket function alone
		resultKey := MakeBucket(test.bucketByteSlices[0])
		for _, bucketBytes := range test.bucketByteSlices[1:] {
			resultKey = resultKey.Bucket(bucketBytes)
		}
		if !bytes.Equal(resultKey.Path(), test.expectedPath) {
			t.Errorf("TestBucketPath: got wrong path using MakeBucket. "+
				"Want: %s, got: %s", string(test.expectedPath), string(resultKey.Path()))
		}
	}
}

func TestBucketKey(t *testing.T) {
	tests := []struct {
		bucketByteSlices [][]byte
		key              []byte
		expectedKeyBytes []byte
	}{
		{
			bucketByteSlices: [][]byte{[]byte("hello")},
			key:              []byte("test"),
			expectedKeyBytes: []byte("hello/test"),
		},
		{
			bucketByteSlices: [][]byte{[]byte("hello"), []byte("world")},
			key:              []byte("test"),
			expectedKeyBytes: []byte("hello/world/test"),
		},
	}

	for _, test := range tests {
		bucket := MakeBucket(test.bucketByteSlices[0])
		for _, bucketBytes := range test.bucketByteSlices[1:] {
			bucket = bucket.Bucket(bucketBytes)
		}
		resultKey := bucket.Key(test.key)
		if !bytes.Equal(resultKey.Bytes(), test.expectedKeyBytes) {
			t.Errorf("TestBucketKey: got wrong key. Want: %s, got: %s",
				string(test.expectedKeyBytes), resultKey)
		}
		if !bytes.Equal(resultKey.Suffix(), test.key) {
			t.Errorf("TestBucketKey: got wrong suffix. Want: %s, got: %s",
				string(test.key), string(resultKey.Suffix()))
		}
		if resultKey.Bucket() != bucket {
			t.Errorf("TestBucketKey: key does not point back to its bucket")
		}
	}
}
