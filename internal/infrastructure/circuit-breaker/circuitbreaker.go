package circuitbreaker

import "github.com/sony/gobreaker/v2"

// CreateCircuitBreaker builds the breaker that guards outbound SMTP
// deliveries. It opens once three or more attempts have been made and at
// least 60% of them failed, so a dead relay stops stalling registrations.
func CreateCircuitBreaker(name string) *gobreaker.CircuitBreaker[struct{}] {
	var st gobreaker.Settings
	st.Name = name
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}

	return gobreaker.NewCircuitBreaker[struct{}](st)
}
