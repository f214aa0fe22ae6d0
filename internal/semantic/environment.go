package semantic

// env maps a name (variable, parameter, function, or type) to its compact
// string type. Each scope clones its parent rather than chaining lookups,
// mirroring the Python checker's per-call dict copies.
type env map[string]string

func (e env) clone() env {
	c := make(env, len(e)+4)
	for k, v := range e {
		c[k] = v
	}
	return c
}

// Signature is a checked function's parameter and return types.
type Signature struct {
	Params     map[string]string
	ParamOrder []string
	ReturnType string
}
