// Package prepared holds a single staged modification against a
// guarded value. The transform is stored at construction and runs only
// inside Apply, against a scratch copy; the original is replaced only
// after the transform succeeds.
//
// Key operations:
// - New: pair a staged.Container with a transform, without running it
// - Apply: stage, validate, then commit-or-abandon in one pass
// - Cancel: abandon the staged modification and recover the Token
// - GetNext: read a scratch copy of the current guarded value
//
// A Prepared is consumed by exactly one Apply or Cancel call; reuse
// trips the container's single-use guard. For composing two units into
// one transaction, see package chain.
package prepared
