// Package seal ranks mechanical seal parts from an in-memory catalog and
// computes the derived engineering quantities used when sizing a seal.
//
// selector.go provides the Selector, which owns an append-only catalog and
// exposes Recommend: a single linear scan that hard-filters on preferred
// material and motion/speed, then ranks the survivors by a weighted penalty:
// ID mismatch(×10) + CS mismatch(×5) + over-temperature(×50/°C) +
// first-preference material(50) + medium(10) + pressure violation
// (1e6 + overshoot×1000). Ties within 1e-6 go to the larger derated
// pressure allowance, then to catalog order.
//
// score.go holds the pure penalty calculation and the per-factor breakdown
// rendered into Match.Rationale.
//
// derate.go and derived.go are catalog-independent: the temperature derating
// step table, groove diameter, squeeze percentage and the chemical
// compatibility rule table.
//
// catalog.go is the copy-on-write record list. Readers take a lock-free
// snapshot; appends serialize on a mutex and publish a new slice.
package seal
