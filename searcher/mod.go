package searcher

import "math"

// Inf bounds every reachable score. It is kept well inside int range so
// that negating the window never overflows.
const Inf = math.MaxInt32
