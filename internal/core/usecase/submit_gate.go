package usecase

import (
	"sync"

	"housing-dashboard-service/internal/core/domain"
)

// submitGate защищает от двойной отправки одной и той же формы.
// Ключ - вид формы плюс пользователь: повторный Execute, пока первый
// не завершился, отклоняется без сетевых вызовов.
type submitGate struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func newSubmitGate() *submitGate {
	return &submitGate{inFlight: make(map[string]struct{})}
}

// begin занимает ключ. Если он уже занят - domain.ErrSubmissionInFlight.
func (g *submitGate) begin(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[key]; busy {
		return domain.ErrSubmissionInFlight
	}
	g.inFlight[key] = struct{}{}
	return nil
}

// end освобождает ключ. Вызывается через defer независимо от исхода.
func (g *submitGate) end(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, key)
}
