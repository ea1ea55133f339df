package llm

import "context"

type contextKey string

const (
	purposeKey  contextKey = "llm_purpose"
	identityKey contextKey = "llm_identity"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithIdentity attaches the requesting identity to the context. The cache
// embeds it in its key so personalized output is never shared across
// learners, plans, or steps.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFrom extracts the identity from the context. The zero Identity
// means the request is not learner-scoped.
func IdentityFrom(ctx context.Context) Identity {
	if v, ok := ctx.Value(identityKey).(Identity); ok {
		return v
	}
	return Identity{}
}
