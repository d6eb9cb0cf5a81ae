// Package thermal evaluates Newton's law of cooling for a stored product.
//
// dT/dt = −k·(T − T_amb) has the exact solution
//
//	T(t) = T_amb + (T_0 − T_amb)·e^(−k·t)
//
// [Simulate] samples that curve over a horizon and reports when the
// product first reaches a critical temperature, both from the sampled grid
// (the dashboard's historical behavior) and by inverting the closed form.
package thermal
