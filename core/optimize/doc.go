// Package optimize implements the iterative optimizers behind lingrad's
// linear models: a batched gradient optimizer and a cyclic coordinate-descent
// optimizer, together with the strategy types they are assembled from
// (cost functions, link functions, learning-rate schedules, convergence
// detectors, batch randomizers and coefficient initializers).
//
// Both optimizers expose FindExtrema, which takes a design matrix of
// observations and a label matrix and returns the learned coefficient
// matrix. All hyperparameters are fixed at construction and validated
// eagerly; each FindExtrema call is independent and leaves no state behind
// apart from the readable cost trace of the most recent call.
//
// FindExtrema is synchronous and single-threaded. An optimizer instance must
// not be used from concurrent goroutines; construct one instance per caller.
package optimize
