package log

// Standard attribute keys used across lingrad log events. Keeping the keys in
// one place makes the training logs filterable: every fit emits the same
// model/operation/data fields regardless of which estimator produced them.
const (
	// ModelNameKey identifies the estimator type, e.g. "SGDRegressor".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score".
	OperationKey = "ml.operation"

	// SamplesKey is the number of observation rows being processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature columns being processed.
	FeaturesKey = "data.features"

	// TargetsKey is the number of output columns (1 for regression and
	// binary classification, C for multiclass).
	TargetsKey = "data.targets"

	// IterationKey is the zero-based index of the optimizer iteration.
	IterationKey = "opt.iteration"

	// DeltaKey is the L2 norm of the last coefficient update.
	DeltaKey = "opt.delta"

	// LearningRateKey is the learning rate used for the last update.
	LearningRateKey = "opt.learning_rate"

	// CostKey is the full-dataset cost at the last iteration.
	CostKey = "opt.cost"
)
