package checkout

import (
	"sync"
	"time"

	"github.com/fjod/vistara/internal/domain"
)

// Attempt is one started checkout. It resolves exactly once.
type Attempt struct {
	ID        string
	StartedAt time.Time

	once   sync.Once
	done   chan struct{}
	result domain.OrderPlaced
}

// Done is closed when the attempt has completed
func (a *Attempt) Done() <-chan struct{} {
	return a.done
}

// Result returns the success notification once the attempt is done
func (a *Attempt) Result() (domain.OrderPlaced, bool) {
	select {
	case <-a.done:
		return a.result, true
	default:
		return domain.OrderPlaced{}, false
	}
}

func (a *Attempt) resolve(event domain.OrderPlaced) {
	a.once.Do(func() {
		a.result = event
		close(a.done)
	})
}
