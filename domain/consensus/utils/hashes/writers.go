package hashes

import (
	"crypto/sha256"
	"hash"

	"github.com/cashnode/cashd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// DoubleHashWriter is used to incrementally double-SHA256 data without
// concatenating all of the data to a single buffer. It exposes an io.Writer
// api and a Finalize function to get the resulting hash.
type DoubleHashWriter struct {
	inner hash.Hash
}

// NewDoubleHashWriter returns a new DoubleHashWriter
func NewDoubleHashWriter() *DoubleHashWriter {
	return &DoubleHashWriter{inner: sha256.New()}
}

// Write will always return (len(p), nil)
func (h *DoubleHashWriter) Write(p []byte) (n int, err error) {
	return h.inner.Write(p)
}

// InfallibleWrite is just like Write but doesn't return anything
func (h *DoubleHashWriter) InfallibleWrite(p []byte) {
	// This write can never return an error, this is part of the hash.Hash interface contract.
	_, err := h.Write(p)
	if err != nil {
		panic(errors.Wrap(err, "this should never happen. hash.Hash interface promises to not return errors."))
	}
}

// Finalize returns the resulting double hash in internal byte order
func (h *DoubleHashWriter) Finalize() *externalapi.DomainHash {
	firstHash := h.inner.Sum(nil)
	secondHash := sha256.Sum256(firstHash)
	return externalapi.NewDomainHashFromByteArray(&secondHash)
}

// DoubleSHA256 returns the double-SHA256 hash of data
func DoubleSHA256(data []byte) *externalapi.DomainHash {
	writer := NewDoubleHashWriter()
	writer.InfallibleWrite(data)
	return writer.Finalize()
}
