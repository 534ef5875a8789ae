package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Role y Unit viajan en el token para que el middleware decida sin releer el almacén de credenciales.
// El ID de sesión va en el claim estándar jti.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"usuario"`
	Role     string `json:"nivel"` // "admin" | "usuario"
	Unit     string `json:"unidade,omitempty"`
}

// Identity datos extraídos de un token válido.
type Identity struct {
	SessionID string
	Username  string
	Role      string
	Unit      string
	ExpiresAt time.Time
}

// Generate genera un token JWT firmado para la sesión sessionID.
// expMinutes <= 0 omite el claim exp: el token vale mientras la sesión siga abierta.
// El tiempo devuelto es cero en ese caso.
func Generate(secret, sessionID, username, role, unit, issuer string, expMinutes int) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       sessionID,
			Issuer:   issuer,
			Subject:  username,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Username: username,
		Role:     role,
		Unit:     unit,
	}
	var exp time.Time
	if expMinutes > 0 {
		exp = now.Add(time.Duration(expMinutes) * time.Minute)
		claims.ExpiresAt = jwt.NewNumericDate(exp)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse valida el token y devuelve la identidad.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Identity, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	id := &Identity{
		SessionID: claims.ID,
		Username:  claims.Username,
		Role:      claims.Role,
		Unit:      claims.Unit,
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id, nil
}
