package middleware

import (
	"net/http"
	"strings"

	"bus-ticketing/pkg/utils"
)

// AgentHeader names the booking agent a request is made on behalf of.
const AgentHeader = "X-Agent-ID"

// Agent puts the agent ID from AgentHeader into the request context.
// Requests without the header are direct customer bookings.
func Agent() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			agentID := strings.TrimSpace(r.Header.Get(AgentHeader))
			if agentID == "" {
				next.ServeHTTP(w, r)
				return
			}

			if len(agentID) > 64 {
				utils.ResponseBadRequest(w, "Invalid "+AgentHeader+" header", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetAgentContext(r.Context(), agentID)))
		})
	}
}
