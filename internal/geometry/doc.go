// Package geometry solves the cost-minimizing shape of a closed tank.
//
// A tank holds a fixed volume V. Its two caps cost C_base per m² and its
// lateral wall costs C_side per m². The base is either a circle or a
// regular n-gon; both are described by a [Shape] through two constants:
//
//   - area constant k: base area = k·d² for characteristic dimension d
//   - perimeter factor p: base perimeter = p·d
//
// With the volume constraint h = V/(k·d²) the cost becomes a function of d
// alone, C(d) = 2·k·d²·C_base + p·V·C_side/(k·d), and the Lagrange
// stationary point is d³ = p·V·C_side/(4·k²·C_base). [Solve] evaluates
// that closed form directly; there is no iterative search.
package geometry
