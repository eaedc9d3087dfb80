package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	UserIDKey ContextKey = "userID"
)

// JWTCustomClaims はJWTに含めるクレーム。sub にユーザーID (UUID) を入れる
type JWTCustomClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
