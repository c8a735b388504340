package middleware

import (
	"context"
	"net/http"
	"strings"
)

// ContextKey identifica os valores que os middlewares anexam ao contexto.
type ContextKey int

const (
	ActorKey ContextKey = iota
	RequestIDKey
)

// ActorHeader é o header com o nome do operador que executa a movimentação.
const ActorHeader = "X-Actor"

// Actor anexa o operador ao contexto. Sem header, usa defaultActor.
func Actor(defaultActor string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := strings.TrimSpace(r.Header.Get(ActorHeader))
			if actor == "" {
				actor = defaultActor
			}
			ctx := context.WithValue(r.Context(), ActorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetActorFromContext é uma função utilitária para extrair o operador no handler.
func GetActorFromContext(ctx context.Context) (string, bool) {
	actor, ok := ctx.Value(ActorKey).(string)
	return actor, ok
}
