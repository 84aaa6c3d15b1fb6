package llm

import "context"

// purposeContextKey is the private context key for the purpose label.
// A struct key cannot collide with values set by other packages.
type purposeContextKey struct{}

// WithPurpose tags the context with what this call is for ("plan",
// "explain", ...). The logging middleware records the tag on the
// generation event row, so audit queries can split usage by feature.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeContextKey{}, purpose)
}

// PurposeFrom returns the purpose tag set by WithPurpose, or "unknown"
// for untagged contexts.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeContextKey{}).(string); ok {
		return v
	}
	return "unknown"
}
