package appointment

import "github.com/tallerapp/workshop-manager/internal/audit"

// Auditor records lifecycle events off the request path.
// *audit.Dispatcher satisfies it.
type Auditor interface {
	Dispatch(ev audit.Event)
}
