// Package batch solves many systems described in a YAML problem file
// concurrently and reports the outcomes in input order.
//
// File format:
//
//	problems:
//	  - name: small
//	    method: gauss
//	    A: [[2, 1], [1, 3]]
//	    b: [4, 7]
//	  - name: iterative
//	    method: jacobi
//	    A: [[10, 1], [1, 10]]
//	    b: ["11", "11"]
//	    tolerance: 1e-6
//
// A failing problem records its error in its Outcome; it does not stop the
// others.
package batch
