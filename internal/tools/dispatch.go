package tools

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/zoralabs/coins-mcp/internal/codec"
)

// Dispatcher routes one tool invocation through lookup, validation, the
// credential gate, the handler and the response codec. Validation and
// gating are purely local: a malformed or unauthorized request fails
// before any call leaves the process.
type Dispatcher struct {
	registry *Registry
	env      *Env
	logger   *logrus.Logger
}

func NewDispatcher(registry *Registry, env *Env, logger *logrus.Logger) *Dispatcher {
	if logger == nil {
		logger = logrus.New()
	}
	return &Dispatcher{registry: registry, env: env, logger: logger}
}

// Invoke executes the named tool against raw caller arguments and returns
// the rendered result text. Errors are one of *UnknownToolError,
// *ValidationError, ErrCredentialMissing or *ExternalError.
func (d *Dispatcher) Invoke(ctx context.Context, name string, raw map[string]any) (string, error) {
	spec, ok := d.registry.Lookup(name)
	if !ok {
		return "", &UnknownToolError{Name: name}
	}

	args, err := Validate(spec.Fields, raw)
	if err != nil {
		return "", err
	}

	if spec.Write && d.env.Signer == nil {
		return "", ErrCredentialMissing
	}

	result, err := spec.Handler(ctx, d.env, args)
	if err != nil {
		// Handlers surface late argument violations (per-leg trade
		// fields, malformed amounts) before calling out; keep those
		// distinct from collaborator failures.
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			return "", err
		}
		d.logger.WithField("tool", name).WithError(err).Warn("collaborator call failed")
		return "", &ExternalError{Err: err}
	}

	text, err := codec.Render(result)
	if err != nil {
		return "", &ExternalError{Err: err}
	}
	return text, nil
}
