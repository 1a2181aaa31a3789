package utils

import (
	"context"
)

type contextKey string

const (
	AgentIDKey contextKey = "agent_id"
)

// GetAgentIDFromContext returns the booking agent acting on this request.
func GetAgentIDFromContext(ctx context.Context) (string, bool) {
	agentVal := ctx.Value(AgentIDKey)
	if agentVal == nil {
		return "", false
	}

	agentID, ok := agentVal.(string)
	return agentID, ok && agentID != ""
}

func SetAgentContext(ctx context.Context, agentID string) context.Context {
	return context.WithValue(ctx, AgentIDKey, agentID)
}
