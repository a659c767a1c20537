package authenticating

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/config"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// Authenticator autentica o operador único do dashboard. As credenciais vêm
// da configuração; não há cadastro de usuários.
type Authenticator interface {
	Login(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg,
	}
}

// Login valida as credenciais do operador contra o hash configurado e emite
// um token com validade de 24 horas.
func (s *Service) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}

	if username != s.cfg.Auth.OperatorUser {
		return "", ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword(
		[]byte(s.cfg.Auth.OperatorPassHash),
		[]byte(password),
	)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := &domain.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		return "", err
	}

	return signed, nil
}

// ValidateToken verifica assinatura e expiração do token e retorna as claims.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
