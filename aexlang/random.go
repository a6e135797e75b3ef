package aexlang

import (
	"math/rand/v2"

	"github.com/aexlang/aex/nat"
)

// RandomExpr generates an expression tree at most depth levels deep.
// All four constructors occur, with extra weight on Minus so that
// truncating subtraction fires often, and an occasional constant wide
// enough that products overflow machine words.
func RandomExpr(r *rand.Rand, depth int) Expr {
	if depth <= 0 {
		return Const{N: randomNat(r)}
	}
	switch r.IntN(8) {
	case 0:
		return Const{N: randomNat(r)}
	case 1, 2:
		return Plus{
			A: RandomExpr(r, depth-1),
			B: RandomExpr(r, depth-1),
		}
	case 3, 4, 5:
		return Minus{
			A: RandomExpr(r, depth-1),
			B: RandomExpr(r, depth-1),
		}
	default:
		return Mult{
			A: RandomExpr(r, depth-1),
			B: RandomExpr(r, depth-1),
		}
	}
}

func randomNat(r *rand.Rand) nat.Nat {
	if r.IntN(16) == 0 {
		return nat.New(r.Uint64())
	}
	return nat.New(uint64(r.IntN(50)))
}
