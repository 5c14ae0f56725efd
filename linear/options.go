package linear

// SGDOption is a functional option for SGDRegressor.
type SGDOption func(*SGDRegressor)

// WithSGDLambda sets the regularization strength. Zero disables shrinkage.
func WithSGDLambda(lambda float64) SGDOption {
	return func(r *SGDRegressor) { r.lambda = lambda }
}

// WithSGDBatchSize sets the number of rows sampled per gradient step. Zero
// or a value above the sample count selects full-batch mode.
func WithSGDBatchSize(batchSize int) SGDOption {
	return func(r *SGDRegressor) { r.batchSize = batchSize }
}

// WithSGDIterationLimit sets the hard cap on iterations.
func WithSGDIterationLimit(limit int) SGDOption {
	return func(r *SGDRegressor) { r.iterationLimit = limit }
}

// WithSGDTol sets the minimum coefficient update below which training stops.
func WithSGDTol(tol float64) SGDOption {
	return func(r *SGDRegressor) { r.tol = tol }
}

// WithSGDLearningRate sets the initial learning rate.
func WithSGDLearningRate(eta0 float64) SGDOption {
	return func(r *SGDRegressor) { r.eta0 = eta0 }
}

// WithSGDSchedule selects the learning-rate schedule: "constant" or
// "decreasing".
func WithSGDSchedule(kind string) SGDOption {
	return func(r *SGDRegressor) { r.learningRate = kind }
}

// WithSGDInitStrategy selects the initial-coefficients strategy: "zeros" or
// "random".
func WithSGDInitStrategy(kind string) SGDOption {
	return func(r *SGDRegressor) { r.initStrategy = kind }
}

// WithSGDFitIntercept sets whether an intercept column is appended before
// training.
func WithSGDFitIntercept(fit bool) SGDOption {
	return func(r *SGDRegressor) { r.fitIntercept = fit }
}

// WithSGDInterceptScale sets the scale of the appended intercept column.
func WithSGDInterceptScale(scale float64) SGDOption {
	return func(r *SGDRegressor) { r.interceptScale = scale }
}

// WithSGDRandomState seeds batch sampling and random initialization for
// reproducible training.
func WithSGDRandomState(seed int64) SGDOption {
	return func(r *SGDRegressor) { r.randomState = seed }
}

// WithSGDLossHistory enables recording of the per-iteration loss.
func WithSGDLossHistory(collect bool) SGDOption {
	return func(r *SGDRegressor) { r.collectLoss = collect }
}

// LassoOption is a functional option for Lasso.
type LassoOption func(*Lasso)

// WithLassoIterationLimit sets the hard cap on coordinate-descent sweeps.
func WithLassoIterationLimit(limit int) LassoOption {
	return func(l *Lasso) { l.iterationLimit = limit }
}

// WithLassoTol sets the minimum per-sweep coefficient update below which
// training stops.
func WithLassoTol(tol float64) LassoOption {
	return func(l *Lasso) { l.tol = tol }
}

// WithLassoFitIntercept sets whether the data is centered and an intercept
// recovered after training.
func WithLassoFitIntercept(fit bool) LassoOption {
	return func(l *Lasso) { l.fitIntercept = fit }
}

// WithLassoLossHistory enables recording of the per-sweep loss.
func WithLassoLossHistory(collect bool) LassoOption {
	return func(l *Lasso) { l.collectLoss = collect }
}

// LogisticOption is a functional option for LogisticRegression.
type LogisticOption func(*LogisticRegression)

// WithLogisticLambda sets the regularization strength.
func WithLogisticLambda(lambda float64) LogisticOption {
	return func(lr *LogisticRegression) { lr.lambda = lambda }
}

// WithLogisticBatchSize sets the number of rows sampled per gradient step.
// Zero or a value above the sample count selects full-batch mode.
func WithLogisticBatchSize(batchSize int) LogisticOption {
	return func(lr *LogisticRegression) { lr.batchSize = batchSize }
}

// WithLogisticIterationLimit sets the hard cap on iterations.
func WithLogisticIterationLimit(limit int) LogisticOption {
	return func(lr *LogisticRegression) { lr.iterationLimit = limit }
}

// WithLogisticTol sets the minimum coefficient update below which training
// stops.
func WithLogisticTol(tol float64) LogisticOption {
	return func(lr *LogisticRegression) { lr.tol = tol }
}

// WithLogisticLearningRate sets the initial learning rate.
func WithLogisticLearningRate(eta0 float64) LogisticOption {
	return func(lr *LogisticRegression) { lr.eta0 = eta0 }
}

// WithLogisticSchedule selects the learning-rate schedule: "constant" or
// "decreasing".
func WithLogisticSchedule(kind string) LogisticOption {
	return func(lr *LogisticRegression) { lr.learningRate = kind }
}

// WithLogisticFitIntercept sets whether an intercept column is appended
// before training.
func WithLogisticFitIntercept(fit bool) LogisticOption {
	return func(lr *LogisticRegression) { lr.fitIntercept = fit }
}

// WithLogisticInterceptScale sets the scale of the appended intercept column.
// Zero disables the column.
func WithLogisticInterceptScale(scale float64) LogisticOption {
	return func(lr *LogisticRegression) { lr.interceptScale = scale }
}

// WithLogisticRandomState seeds batch sampling and random initialization for
// reproducible training.
func WithLogisticRandomState(seed int64) LogisticOption {
	return func(lr *LogisticRegression) { lr.randomState = seed }
}

// WithLogisticLossHistory enables recording of the per-iteration
// log-likelihood.
func WithLogisticLossHistory(collect bool) LogisticOption {
	return func(lr *LogisticRegression) { lr.collectLoss = collect }
}
