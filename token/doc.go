// Package token defines the Token record propagated by the decode loop:
// one surviving hypothesis with a back-pointer to its parent, the arc
// that produced it, its accumulated tropical cost, the input-label
// sequence consumed so far, and the opaque scorer state threaded through
// the acoustic model.
//
// Tokens form a back-pointer tree rooted at a seed token (spec §3,
// Lifecycle): every child holds a reference to its parent and parent
// references strictly precede children in creation order, so the graph is
// acyclic by construction and needs no explicit cycle check.
package token
