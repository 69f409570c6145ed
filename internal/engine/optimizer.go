package engine

// Optimizer produces a simulated execution plan for a parsed query.
type Optimizer struct{}

// Optimize wraps the parsed query into a plan descriptor.
func (Optimizer) Optimize(parsed string) string {
	return "OptimizedPlan(" + parsed + ")"
}
