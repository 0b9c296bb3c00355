package security

import (
	"errors"
	"strconv"
	"time"

	"estimate_request_service/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

const (
	tokenIssuer   = "estimate-request-service"
	tokenAudience = "api-access"
	accessTTL     = 8 * time.Hour
)

// UserClaims carries the actor snapshot the API authorizes against.
type UserClaims struct {
	UserID      uint                                `json:"user_id"`
	CompanyID   *uint                               `json:"company_id,omitempty"`
	Name        string                              `json:"name,omitempty"`
	Email       string                              `json:"email,omitempty"`
	Locale      string                              `json:"locale,omitempty"`
	Roles       []string                            `json:"roles,omitempty"`
	Permissions map[string]entities.PermissionScope `json:"permissions,omitempty"`
	Modules     []string                            `json:"modules,omitempty"`
	jwt.RegisteredClaims
}

func (c UserClaims) Actor() entities.Actor {
	return entities.Actor{
		UserID:      c.UserID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Email:       c.Email,
		Locale:      c.Locale,
		Roles:       c.Roles,
		Permissions: c.Permissions,
		Modules:     c.Modules,
	}
}

type TokenManager interface {
	GenerateAccessToken(actor entities.Actor) (string, error)
	ValidateToken(tokenString string) (*UserClaims, error)
}

type tokenManager struct {
	secret []byte
	now    func() time.Time
}

func NewTokenManager(secret string) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
		now:    time.Now,
	}
}

func (m *tokenManager) GenerateAccessToken(actor entities.Actor) (string, error) {
	now := m.now()
	claims := UserClaims{
		UserID:      actor.UserID,
		CompanyID:   actor.CompanyID,
		Name:        actor.Name,
		Email:       actor.Email,
		Locale:      actor.Locale,
		Roles:       actor.Roles,
		Permissions: actor.Permissions,
		Modules:     actor.Modules,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(actor.UserID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithAudience(tokenAudience), jwt.WithIssuer(tokenIssuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		if claims.UserID == 0 && claims.Subject != "" {
			uid, _ := strconv.ParseUint(claims.Subject, 10, 64)
			claims.UserID = uint(uid)
		}
		return claims, nil
	}

	return nil, ErrInvalidToken
}
