// Package table16 implements the SHA-256 compression function as an
// arithmetic circuit built around a single 16-bit spread lookup table.
//
// Bitwise rotate/shift/XOR/AND have no algebraic form over a prime field.
// Instead, every 32-bit word is handled as two 16-bit halves, and each half
// is tied through a lookup table to its "spread" form, where a zero bit sits
// between every data bit. Adding spread values accumulates the per-bit sums
// in independent two-bit slots, so the even-position bits of a spread sum
// are the XOR of the operands and the odd-position bits carry the AND. The
// Ch, Maj, Σ and σ functions of SHA-256 all reduce to this one trick; the
// mod-2^32 additions are reproduced with explicit, range-bounded carry
// witnesses.
//
// The table has one row per 16-bit value, holding its length-class tag and
// its 32-bit spread form. Membership in the table is the gadget's range
// proof: any witness outside the 16-bit domain makes the lookup argument,
// and with it the whole circuit instance, unsatisfiable.
//
// The chip exposes a small surface to the outer circuit: New (configure),
// Load (populate the table, once per instance), InitialState or
// StateFromWords (IV or chained state), Compress (one 512-bit block) and
// Digest. Multi-block messages are hashed by feeding the state returned by
// Compress back in; padding is the caller's concern.
package table16
