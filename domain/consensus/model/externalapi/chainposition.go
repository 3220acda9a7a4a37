package externalapi

// ChainPosition is the view of a block that activation rules are evaluated
// against.
type ChainPosition struct {
	Height         uint32
	MedianTimePast uint32
}
