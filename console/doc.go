// Package console is the interactive terminal front end: it prompts for the
// size, the rows of A, the vector b and the method, then prints the numbered
// step trace, the solution and the residual.
package console
