package session

import (
	"context"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal attaches a principal to ctx
func WithPrincipal(ctx context.Context, p *models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the principal attached by the gate
func PrincipalFromContext(ctx context.Context) (*models.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*models.Principal)
	return p, ok && p != nil
}
