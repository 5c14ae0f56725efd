// Package lingrad provides linear-model training algorithms for Go: linear
// and logistic/softmax regression trained by mini-batch gradient descent, and
// Lasso trained by cyclic coordinate descent, all over gonum dense matrices.
//
// The heart of the library is the optimizer core in core/optimize: a
// gradient optimizer assembled from pluggable cost functions, learning-rate
// schedules, batch randomizers, coefficient initializers and convergence
// detectors, plus a sibling coordinate-descent optimizer for L1 problems.
// The façades in the linear package wire these pieces into familiar
// Fit/Predict/Score estimators.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/lingrad/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
//	    y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})
//
//	    reg := linear.NewSGDRegressor(
//	        linear.WithSGDLearningRate(0.05),
//	        linear.WithSGDIterationLimit(2000),
//	    )
//	    if err := reg.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    pred, _ := reg.Predict(mat.NewDense(1, 1, []float64{5}))
//	    fmt.Println(pred.At(0, 0)) // close to 10
//	}
//
// Training is synchronous and single-threaded; construct one estimator per
// concurrent caller.
package lingrad
