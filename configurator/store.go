package configurator

import (
	"sync"

	"github.com/google/uuid"

	"trailercraft-co/pricing"
)

// Store holds in-progress sessions in memory. Nothing is persisted mid-flow;
// abandoning a session simply leaves it to be dropped with the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	validator  *Validator
	calculator *pricing.Calculator
	submitter  Submitter
}

// NewStore creates a session store wired to the shared engine components.
func NewStore(validator *Validator, calculator *pricing.Calculator, submitter Submitter) *Store {
	return &Store{
		sessions:   make(map[string]*Session),
		validator:  validator,
		calculator: calculator,
		submitter:  submitter,
	}
}

// Create starts a new session with a fresh ID.
func (st *Store) Create() *Session {
	session := NewSession(uuid.NewString(), st.validator, st.calculator, st.submitter)
	st.mu.Lock()
	st.sessions[session.ID()] = session
	st.mu.Unlock()
	return session
}

// Get returns the session for an ID, if it exists.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	session, ok := st.sessions[id]
	return session, ok
}

// Delete discards a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Count returns the number of live sessions.
func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
