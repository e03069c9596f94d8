package transit

import "errors"

// Resolver error taxonomy. Callers classify with errors.Is; the gateway
// maps each kind to a fixed caller-facing string and HTTP status.
var (
	// ErrUnknownStop is returned when a stop code is absent from the
	// current directory generation or not recognised by the upstream.
	ErrUnknownStop = errors.New("unknown stop")

	// ErrInvalidDirection is returned for a direction outside {1, 2}.
	ErrInvalidDirection = errors.New("invalid direction")

	// ErrUpstreamUnreachable covers transport level failures and
	// timeouts talking to the Naolib API.
	ErrUpstreamUnreachable = errors.New("upstream unreachable")

	// ErrUpstreamBadResponse covers responses that arrived but could
	// not be interpreted.
	ErrUpstreamBadResponse = errors.New("upstream bad response")
)
