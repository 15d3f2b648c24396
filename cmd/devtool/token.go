package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/alion/internal/auth"
	"github.com/osse101/alion/internal/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenCommand mints a bearer token signed with JWT_SECRET for local testing
type TokenCommand struct{}

func (c *TokenCommand) Name() string {
	return "token"
}

func (c *TokenCommand) Description() string {
	return "Mint a development access token: token <username> [user-id] [ttl]"
}

func (c *TokenCommand) Run(args []string) error {
	token, id, ttl, err := mintToken(os.Getenv("JWT_SECRET"), args)
	if err != nil {
		return err
	}

	PrintInfo("user_id=%s expires_in=%s", id.UserID, ttl)
	fmt.Println(token)
	return nil
}

func mintToken(secret string, args []string) (string, domain.Identity, time.Duration, error) {
	if len(args) < 1 {
		return "", domain.Identity{}, 0, usageError("token <username> [user-id] [ttl]")
	}
	if secret == "" {
		return "", domain.Identity{}, 0, errors.New("JWT_SECRET must be set")
	}

	id := domain.Identity{
		UserID:   uuid.NewString(),
		Username: args[0],
		Email:    args[0] + "@localhost",
	}
	if len(args) > 1 {
		parsed, err := uuid.Parse(args[1])
		if err != nil {
			return "", id, 0, fmt.Errorf("invalid user id: %w", err)
		}
		id.UserID = parsed.String()
	}

	ttl := defaultTokenTTL
	if len(args) > 2 {
		d, err := time.ParseDuration(args[2])
		if err != nil {
			return "", id, 0, fmt.Errorf("invalid ttl: %w", err)
		}
		ttl = d
	}

	verifier, err := auth.NewVerifier(secret)
	if err != nil {
		return "", id, 0, err
	}
	token, err := verifier.Issue(id, ttl)
	if err != nil {
		return "", id, 0, err
	}
	return token, id, ttl, nil
}
