package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/entity"
)

// Claves bajo las que el SPA persiste estado en el cliente.
const (
	SessionStorageKey = "stockpro_user"
	UsersStorageKey   = "usuarios_data"
)

// SessionState estado de la máquina de sesión.
type SessionState int

const (
	StateAnonymous SessionState = iota
	StateAuthenticated
)

func (s SessionState) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Session Anonymous → Authenticated → Anonymous. Guarda el registro completo de la credencial;
// las respuestas HTTP nunca exponen la contraseña.
type Session struct {
	ID        string
	state     SessionState
	user      *entity.Credential
	CreatedAt time.Time
	ExpiresAt time.Time // cero = sin expiración
}

// NewSession crea una sesión anónima.
func NewSession(id string) *Session {
	return &Session{ID: id, state: StateAnonymous}
}

// Authenticate solo es válido desde Anonymous.
func (s *Session) Authenticate(cred *entity.Credential, now, expiresAt time.Time) error {
	if s.state != StateAnonymous {
		return domain.ErrConflict
	}
	cp := *cred
	cp.Role = entity.NormalizeRole(cp.Role)
	s.user = &cp
	s.state = StateAuthenticated
	s.CreatedAt = now
	s.ExpiresAt = expiresAt
	return nil
}

// End vuelve a Anonymous desde cualquier estado.
func (s *Session) End() {
	s.user = nil
	s.state = StateAnonymous
}

// State estado actual.
func (s *Session) State() SessionState { return s.state }

// IsAuthenticated atajo de State() == StateAuthenticated.
func (s *Session) IsAuthenticated() bool { return s.state == StateAuthenticated }

// User copia de la credencial autenticada; nil si la sesión es anónima.
func (s *Session) User() *entity.Credential {
	if s.user == nil {
		return nil
	}
	cp := *s.user
	return &cp
}

func (s *Session) snapshot() *Session {
	cp := *s
	cp.user = s.User()
	return &cp
}

// SessionRegistry sesiones abiertas en memoria, indexadas por ID (el jti del token).
// Se reinicia con el proceso: los tokens emitidos antes dejan de ser válidos.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewSessionRegistry construye un registro vacío.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session), now: time.Now}
}

// WithClock reemplaza el reloj usado para abrir y expirar sesiones.
func (r *SessionRegistry) WithClock(now func() time.Time) *SessionRegistry {
	r.now = now
	return r
}

// Open crea y registra una sesión autenticada para cred.
// ttl <= 0: la sesión no expira y solo termina con Close (logout).
func (r *SessionRegistry) Open(cred *entity.Credential, ttl time.Duration) (*Session, error) {
	now := r.now()
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = now.Add(ttl)
	}
	s := NewSession(uuid.New().String())
	if err := s.Authenticate(cred, now, expiresAt); err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s.snapshot(), nil
}

// Get devuelve una copia de la sesión si existe, está autenticada y no expiró.
func (r *SessionRegistry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok || !s.IsAuthenticated() {
		return nil, false
	}
	if !s.ExpiresAt.IsZero() && r.now().After(s.ExpiresAt) {
		r.Close(id)
		return nil, false
	}
	return s.snapshot(), true
}

// Close termina la sesión y la quita del registro. Devuelve false si no existía.
func (r *SessionRegistry) Close(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return false
	}
	s.End()
	delete(r.sessions, id)
	return true
}

// Sweep elimina las sesiones expiradas y devuelve cuántas quitó.
func (r *SessionRegistry) Sweep() int {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.sessions {
		if !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt) {
			s.End()
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

// Count número de sesiones registradas.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
