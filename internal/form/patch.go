// internal/form/patch.go
package form

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"go.uber.org/zap"

	"claim-dashboard/internal/models"
)

// ErrInvalidPatch is returned for patches that do anything other than replace
// form fields with text.
var ErrInvalidPatch = errors.New("invalid form patch")

// ApplyPatch applies an RFC 6902 document to the form. Only "replace"
// operations on the six field paths with string values are accepted, and a
// rejected patch leaves the form untouched.
func (c *Controller) ApplyPatch(doc []byte) error {
	patch, err := jsonpatch.DecodePatch(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}

	fields := make([]string, 0, len(patch))
	for i, op := range patch {
		field, err := checkOperation(op)
		if err != nil {
			return fmt.Errorf("%w: operation %d: %v", ErrInvalidPatch, i, err)
		}
		fields = append(fields, field)
	}

	c.mu.Lock()
	next, err := applyToState(c.state, patch)
	if err == nil {
		c.state = next
	}
	c.mu.Unlock()

	if err != nil {
		return err
	}

	c.logger.Debug("form patched", zap.Strings("fields", fields))
	return nil
}

func checkOperation(op jsonpatch.Operation) (string, error) {
	if kind := op.Kind(); kind != "replace" {
		return "", fmt.Errorf("unsupported op %q", kind)
	}

	path, err := op.Path()
	if err != nil {
		return "", err
	}
	field := strings.TrimPrefix(path, "/")
	if !strings.HasPrefix(path, "/") || !models.IsField(field) {
		return "", fmt.Errorf("unknown path %q", path)
	}

	value, err := op.ValueInterface()
	if err != nil {
		return "", err
	}
	if _, ok := value.(string); !ok {
		return "", fmt.Errorf("value for %s must be a string", path)
	}

	return field, nil
}

func applyToState(state models.ClaimFormState, patch jsonpatch.Patch) (models.ClaimFormState, error) {
	current, err := json.Marshal(state)
	if err != nil {
		return state, fmt.Errorf("failed to marshal form: %w", err)
	}

	modified, err := patch.Apply(current)
	if err != nil {
		return state, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}

	var next models.ClaimFormState
	if err := json.Unmarshal(modified, &next); err != nil {
		return state, fmt.Errorf("failed to unmarshal form: %w", err)
	}

	return next, nil
}
