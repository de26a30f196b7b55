// Package matrix provides a dense, row-major numeric matrix, used by
// schedule to precompute the N×N great-arc travel-distance buffer once
// per plan rather than recomputing distances per beam transition.
package matrix
