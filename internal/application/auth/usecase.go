package auth

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockpro/internal/application/dto"
	"github.com/jhoicas/stockpro/internal/application/ports"
	"github.com/jhoicas/stockpro/internal/domain"
	"github.com/jhoicas/stockpro/internal/domain/repository"
	"github.com/jhoicas/stockpro/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int // 0 = la sesión dura hasta el logout
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, validación de token y logout.
type AuthUseCase struct {
	creds    repository.CredentialRepository
	sessions *SessionRegistry
	jwtCfg   JWTConfig
	metrics  ports.MetricsRecorder
}

// NewAuthUseCase construye el caso de uso de auth. metrics puede ser nil.
func NewAuthUseCase(creds repository.CredentialRepository, sessions *SessionRegistry, jwtCfg JWTConfig, metrics ports.MetricsRecorder) *AuthUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &AuthUseCase{creds: creds, sessions: sessions, jwtCfg: jwtCfg, metrics: metrics}
}

// Login busca una coincidencia exacta de usuario y contraseña en el almacén de credenciales.
// Cualquier fallo (usuario inexistente o contraseña errada) devuelve el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		uc.metrics.LoginAttempt(false)
		return nil, domain.ErrInvalidCredentials
	}
	cred, err := uc.creds.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if cred == nil || !passwordMatches(cred.Password, in.Password) {
		uc.metrics.LoginAttempt(false)
		return nil, domain.ErrInvalidCredentials
	}

	session, err := uc.sessions.Open(cred, time.Duration(uc.jwtCfg.ExpMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}
	user := session.User()
	token, exp, err := jwt.Generate(uc.jwtCfg.Secret, session.ID, user.Username, user.Role, user.Unit, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		uc.sessions.Close(session.ID)
		return nil, err
	}
	uc.metrics.LoginAttempt(true)
	uc.metrics.ActiveSessions(uc.sessions.Count())
	var expiresAt *time.Time
	if !exp.IsZero() {
		expiresAt = &exp
	}
	return &dto.LoginResponse{
		Token:      token,
		ExpiresAt:  expiresAt,
		StorageKey: SessionStorageKey,
		User:       dto.SessionUserFromEntity(user),
	}, nil
}

// Authenticate valida el token y devuelve la sesión registrada.
// Token inválido = ErrUnauthorized; sesión cerrada o expirada = ErrSessionClosed.
func (uc *AuthUseCase) Authenticate(tokenString string) (*Session, error) {
	id, err := jwt.Parse(uc.jwtCfg.Secret, tokenString)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	session, ok := uc.sessions.Get(id.SessionID)
	if !ok {
		return nil, domain.ErrSessionClosed
	}
	return session, nil
}

// Logout termina la sesión; el token deja de ser aceptado. Es idempotente.
func (uc *AuthUseCase) Logout(sessionID string) {
	uc.sessions.Close(sessionID)
	uc.metrics.ActiveSessions(uc.sessions.Count())
}

// Me usuario de la sesión, sin contraseña.
func (uc *AuthUseCase) Me(session *Session) (*dto.SessionUserDTO, error) {
	if session == nil || !session.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	u := dto.SessionUserFromEntity(session.User())
	return &u, nil
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// passwordMatches compara contra un hash bcrypt o, si la credencial está en texto plano, por igualdad exacta.
func passwordMatches(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
