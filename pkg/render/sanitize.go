package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	userContentPolicyOnce sync.Once
	userContentPolicy     *bluemonday.Policy
)

// SanitizeUserText strips all markup from user-provided text before it is
// echoed into a rendered snapshot. Form values and error chrome are the only
// user-influenced strings that reach templates.
func SanitizeUserText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(userPolicy().Sanitize(trimmed))
}

func userPolicy() *bluemonday.Policy {
	userContentPolicyOnce.Do(func() {
		userContentPolicy = bluemonday.StrictPolicy()
	})
	return userContentPolicy
}
