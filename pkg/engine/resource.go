package engine

// ResourceRequest describes an outgoing network or navigation request as it
// enters the worker's request pipeline. Headers may be mutated by header
// rewrite rules before the request reaches the network.
type ResourceRequest struct {
	URL     string
	Method  string
	Frame   string
	Headers map[string]string
}

// ResourceResponse is a synthetic response supplied by an interceptor,
// bypassing the network entirely.
type ResourceResponse struct {
	Status      int
	ContentType string
	Headers     map[string]string
	Body        []byte
}

// GateDecision is the outcome of offering a request to the gate.
type GateDecision int

const (
	// GateAllow lets the request proceed, possibly with rewritten headers.
	GateAllow GateDecision = iota
	// GateDeny blocks the request.
	GateDeny
	// GateSynthesize serves the attached response instead of the network.
	GateSynthesize
)

// String returns a human-readable representation of the decision.
func (d GateDecision) String() string {
	switch d {
	case GateAllow:
		return "allow"
	case GateDeny:
		return "deny"
	case GateSynthesize:
		return "synthesize"
	default:
		return "unknown"
	}
}

// GateResult carries the decision plus the synthetic response when the
// decision is GateSynthesize.
type GateResult struct {
	Decision GateDecision
	Response *ResourceResponse
}

// ResourceGate is consulted by the engine before each outgoing request.
// The worker implements it by chaining the registered interceptor, URL
// filtering, and header rewriting.
type ResourceGate interface {
	Offer(req *ResourceRequest) GateResult
}

// GateFunc adapts a function to the ResourceGate interface.
type GateFunc func(req *ResourceRequest) GateResult

// Offer calls f(req).
func (f GateFunc) Offer(req *ResourceRequest) GateResult { return f(req) }

// ResourceInterceptor is the host-registered hook offered each outgoing
// request before policy filtering. Returning a non-nil response serves it
// in place of the network.
type ResourceInterceptor interface {
	OnRequest(req *ResourceRequest) *ResourceResponse
}

// InterceptorFunc adapts a function to the ResourceInterceptor interface.
type InterceptorFunc func(req *ResourceRequest) *ResourceResponse

// OnRequest calls f(req).
func (f InterceptorFunc) OnRequest(req *ResourceRequest) *ResourceResponse { return f(req) }
