// Package chain composes two staged units, A then B, so they behave as
// one transaction: B's transform never runs unless A committed, and the
// chain succeeds only if both do.
//
// Key operations:
// - Of: compose two prepared units in order
// - Apply: commit A, then B; first refusal short-circuits
// - Cancel: abandon both units and recover both Tokens
//
// There is no rollback of an already-committed A when B is refused —
// once A's slot has been replaced, that mutation is durable. A chain
// spanning independent containers is an application-level invariant:
// on refusal, discard every container the chain aggregated rather than
// assume isolation. Outcome exposes which side refused, the pending
// un-applied unit when A refused, and A's spent capability when B did.
package chain
