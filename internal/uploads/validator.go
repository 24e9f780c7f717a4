package uploads

import (
	"fmt"

	"github.com/docsight/docsight/pkg/format"
)

// Validator is the pure acceptance predicate applied to candidates before
// they reach the queue. Rejection is signaled through the boolean return
// plus one user-visible warning naming the violated constraint; it never
// produces an error.
type Validator struct {
	maxSize  int64
	allowed  map[string]struct{}
	notifier Notifier
}

// NewValidator builds a validator for the given policy. A nil notifier
// silently discards warnings.
func NewValidator(maxSize int64, allowedTypes []string, notifier Notifier) *Validator {
	if notifier == nil {
		notifier = NopNotifier{}
	}

	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = struct{}{}
	}

	return &Validator{
		maxSize:  maxSize,
		allowed:  allowed,
		notifier: notifier,
	}
}

// Validate checks media type membership first, then the size limit.
// Each candidate is judged independently; a rejected file never aborts
// the rest of a batch.
func (v *Validator) Validate(c Candidate) bool {
	if _, ok := v.allowed[c.ContentType]; !ok {
		v.notifier.Notify(NotifyWarning, fmt.Sprintf("File type %s is not supported", c.ContentType))
		return false
	}

	if c.Size > v.maxSize {
		v.notifier.Notify(NotifyWarning, fmt.Sprintf("File %s is too large (max %s)", c.Filename, format.FileSize(v.maxSize)))
		return false
	}

	return true
}
