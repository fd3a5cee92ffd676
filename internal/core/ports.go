package core

import (
	"context"

	"suitax/internal/repository"
	"suitax/internal/sui"
	"suitax/internal/tax"
	tokenIssuer "suitax/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name UserStore . UserStore
type UserStore interface {
	GetUser(ctx context.Context, username string) (repository.User, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name NetworkDetector . NetworkDetector
type NetworkDetector interface {
	DetectNetwork(ctx context.Context, input string) (sui.Network, error)
}

//counterfeiter:generate -o fake -fake-name HistoryCollector . HistoryCollector
type HistoryCollector interface {
	CollectAllDigests(ctx context.Context, address string, network sui.Network) sui.DigestCollection
}

//counterfeiter:generate -o fake -fake-name BatchRunner . BatchRunner
type BatchRunner interface {
	ProcessAll(ctx context.Context, digests []string, network sui.Network) []sui.Transaction
}

//counterfeiter:generate -o fake -fake-name Summarizer . Summarizer
type Summarizer interface {
	Summarize(ctx context.Context, transactions []sui.Transaction, country string, year int) tax.Summary
}
