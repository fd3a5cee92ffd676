package core

import (
	"context"
	"errors"
	"fmt"

	"suitax/internal/repository"
	tokenIssuer "suitax/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")

// Authenticate checks the provided username and password against the database.
// If the credentials are valid, it generates a JWT token for the user.
func (a *Analyzer) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := a.users.GetUser(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := a.jwtIssuer.Generate(tokenInfo)
	signed, err := a.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// ValidateToken verifies a bearer token and returns the username claim.
func (a *Analyzer) ValidateToken(token string) (string, error) {
	claims, err := a.jwtIssuer.Validate(token)
	if err != nil {
		return "", fmt.Errorf("validate jwt token: %w", err)
	}

	username, _ := claims["username"].(string)
	return username, nil
}
