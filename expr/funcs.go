package expr

import (
	"math"
	"math/big"
	"math/bits"
	"sync"
)

// Argument bounds for the exact integer built-ins. Beyond these the float
// path returns +Inf and the exact path declines; the memo tables would
// otherwise grow without limit on adversarial input.
const (
	maxFibArg  = 100_000
	maxFactArg = 10_000
)

// builtinArities is the closed set of callable functions with their fixed
// arity. "pi" doubles as the constant π when not directly followed by "(".
var builtinArities = map[string]int{
	"sin": 1, "cos": 1, "tan": 1,
	"sqrt": 1, "log": 1, "exp": 1, "abs": 1,
	"floor": 1, "ceil": 1, "round": 1,
	"fib": 1, "fact": 1,
	"prime": 1, "pi": 1, "isprime": 1,
	"spf": 1, "lpf": 1, "gpf": 1,
	"gcd": 2, "mod": 2,
}

func isBuiltin(name string) bool { _, ok := builtinArities[name]; return ok }

func builtinArity(name string) int { return builtinArities[name] }

// funcCache holds the memo tables for the exact integer built-ins.
// Each compiled rule owns one — there is no process-wide mutable state.
// Entries are never evicted; growth is bounded by the argument caps above
// and is acceptable for realistic input ranges.
type funcCache struct {
	mu     sync.Mutex
	fib    map[int64]*big.Int
	fact   map[int64]*big.Int
	primes []int64
}

func newFuncCache() *funcCache {
	return &funcCache{
		fib:    make(map[int64]*big.Int),
		fact:   make(map[int64]*big.Int),
		primes: []int64{2, 3},
	}
}

// fibBig returns F(|n|) exactly via iterative fast doubling, memoized by
// absolute argument. The iterative loop keeps stack depth constant.
func (c *funcCache) fibBig(n int64) *big.Int {
	if n < 0 {
		n = -n
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.fib[n]; ok {
		return v
	}
	// Fast doubling from the most significant bit of n:
	// F(2k) = F(k)·(2·F(k+1) − F(k)), F(2k+1) = F(k)² + F(k+1)².
	a := big.NewInt(0) // F(0)
	b := big.NewInt(1) // F(1)
	for i := bits.Len64(uint64(n)) - 1; i >= 0; i-- {
		t := new(big.Int).Lsh(b, 1)
		t.Sub(t, a)
		t.Mul(t, a) // F(2k)
		d := new(big.Int).Mul(a, a)
		d.Add(d, new(big.Int).Mul(b, b)) // F(2k+1)
		if (n>>uint(i))&1 == 0 {
			a, b = t, d
		} else {
			a, b = d, new(big.Int).Add(t, d)
		}
	}
	c.fib[n] = a
	return a
}

// factBig returns |n|! as an exact iterative product, memoized.
func (c *funcCache) factBig(n int64) *big.Int {
	if n < 0 {
		n = -n
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.fact[n]; ok {
		return v
	}
	r := big.NewInt(1)
	for i := int64(2); i <= n; i++ {
		r.Mul(r, big.NewInt(i))
	}
	c.fact[n] = r
	return r
}

// nthPrime returns the n-th prime (prime(1)=2), or 0 for n < 1.
func (c *funcCache) nthPrime(n int64) int64 {
	if n < 1 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for int64(len(c.primes)) < n {
		c.growPrimes()
	}
	return c.primes[n-1]
}

// primeCount is the prime-counting function π(n): the number of primes ≤ n.
func (c *funcCache) primeCount(n int64) int64 {
	if n < 2 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.primes[len(c.primes)-1] < n {
		c.growPrimes()
	}
	// Binary search for the first prime > n.
	lo, hi := 0, len(c.primes)
	for lo < hi {
		mid := (lo + hi) / 2
		if c.primes[mid] <= n {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return int64(lo)
}

// growPrimes appends the next prime after the current last one.
// Caller must hold c.mu.
func (c *funcCache) growPrimes() {
	for cand := c.primes[len(c.primes)-1] + 2; ; cand += 2 {
		if isPrime64(cand) {
			c.primes = append(c.primes, cand)
			return
		}
	}
}

// isPrime64 is deterministic trial division; adequate for the coordinate
// magnitudes this engine is queried at.
func isPrime64(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	if n%3 == 0 {
		return n == 3
	}
	for d := int64(5); d*d <= n; d += 6 {
		if n%d == 0 || n%(d+2) == 0 {
			return false
		}
	}
	return true
}

// smallestPrimeFactor returns the least prime factor of |n|, or 0 for |n| < 2.
func smallestPrimeFactor(n int64) int64 {
	if n < 0 {
		n = -n
	}
	if n < 2 {
		return 0
	}
	if n%2 == 0 {
		return 2
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return d
		}
	}
	return n
}

// greatestPrimeFactor returns the largest prime factor of |n|, or 0 for |n| < 2.
func greatestPrimeFactor(n int64) int64 {
	if n < 0 {
		n = -n
	}
	if n < 2 {
		return 0
	}
	g := int64(0)
	for n%2 == 0 {
		g, n = 2, n/2
	}
	for d := int64(3); d*d <= n; d += 2 {
		for n%d == 0 {
			g, n = d, n/d
		}
	}
	if n > 1 {
		g = n
	}
	return g
}

// gcd64 is the non-negative gcd of two int64 values.
func gcd64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// roundInt64 rounds half away from zero and clamps non-finite or
// out-of-range values instead of hitting undefined float→int conversion.
func roundInt64(v float64) int64 {
	if math.IsNaN(v) {
		return 0
	}
	r := math.Round(v)
	if r >= math.MaxInt64 {
		return math.MaxInt64
	}
	if r <= math.MinInt64 {
		return math.MinInt64
	}
	return int64(r)
}

// bigToFloat converts a big integer to float64, saturating to ±Inf.
func bigToFloat(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}

// callBuiltin dispatches a validated fixed-arity call on float arguments.
// Integer built-ins round their arguments; division-by-zero style cases
// yield the +Inf sentinel, never an error.
func (c *funcCache) callBuiltin(name string, args []float64) float64 {
	switch name {
	case "sin":
		return math.Sin(args[0])
	case "cos":
		return math.Cos(args[0])
	case "tan":
		return math.Tan(args[0])
	case "sqrt":
		return math.Sqrt(args[0])
	case "log":
		return math.Log(args[0])
	case "exp":
		return math.Exp(args[0])
	case "abs":
		return math.Abs(args[0])
	case "floor":
		return math.Floor(args[0])
	case "ceil":
		return math.Ceil(args[0])
	case "round":
		return math.Round(args[0])
	case "fib":
		n := roundInt64(args[0])
		if n < -maxFibArg || n > maxFibArg {
			return math.Inf(1)
		}
		return bigToFloat(c.fibBig(n))
	case "fact":
		n := roundInt64(args[0])
		if n < -maxFactArg || n > maxFactArg {
			return math.Inf(1)
		}
		return bigToFloat(c.factBig(n))
	case "prime":
		return float64(c.nthPrime(roundInt64(args[0])))
	case "pi":
		return float64(c.primeCount(roundInt64(args[0])))
	case "isprime":
		if isPrime64(roundInt64(args[0])) {
			return 1
		}
		return 0
	case "spf", "lpf":
		return float64(smallestPrimeFactor(roundInt64(args[0])))
	case "gpf":
		return float64(greatestPrimeFactor(roundInt64(args[0])))
	case "gcd":
		return float64(gcd64(roundInt64(args[0]), roundInt64(args[1])))
	case "mod":
		a, b := roundInt64(args[0]), roundInt64(args[1])
		if b == 0 {
			return math.Inf(1)
		}
		m := a % b
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}
		return float64(m)
	}
	// Unreachable: the parser validates names statically.
	return math.NaN()
}
