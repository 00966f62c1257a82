package types

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// MaxAmountBits is the widest amount the ledger stores.
const MaxAmountBits = sdkmath.MaxBitLen

// ComputeMatchedFunding returns the quadratic-funding approximation for a
// proposal: voterCount² × (contributions / voterCount), dividing first, then
// capped at the whole matching pool.
func ComputeMatchedFunding(contributions sdkmath.Uint, voterCount uint64, pool sdkmath.Uint) sdkmath.Uint {
	if voterCount == 0 || contributions.IsZero() {
		return sdkmath.ZeroUint()
	}

	n := new(big.Int).SetUint64(voterCount)
	avg := new(big.Int).Quo(contributions.BigInt(), n)
	matched := avg.Mul(avg, n.Mul(n, n))

	if matched.Cmp(pool.BigInt()) > 0 {
		return pool
	}
	return sdkmath.NewUintFromBigInt(matched)
}

// AddAmounts sums a and b, failing instead of panicking when the result
// does not fit in MaxAmountBits.
func AddAmounts(a, b sdkmath.Uint) (sdkmath.Uint, error) {
	sum := new(big.Int).Add(a.BigInt(), b.BigInt())
	if err := sdkmath.UintOverflow(sum); err != nil {
		return sdkmath.Uint{}, errorsmod.Wrapf(ErrAmountOverflow, "%s + %s: %s", a, b, err)
	}
	return sdkmath.NewUintFromBigInt(sum), nil
}
