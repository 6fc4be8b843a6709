package calculation

// ProjectionEngine runs deterministic balance projections. It carries no
// state between runs; every call to Project is independent, so a single
// engine is safe to share across concurrent callers.
type ProjectionEngine struct {
	Debug  bool // Enable per-year debug output through the Logger
	Logger Logger
}

// NewProjectionEngine creates a projection engine with logging disabled.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		Logger: NopLogger{},
	}
}

// SetLogger sets the engine logger. Passing nil restores the no-op logger.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}
