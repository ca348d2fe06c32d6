package github

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/zalando/go-keyring"
)

const (
	// TokenEnvVar is the environment variable consulted first for credentials
	TokenEnvVar = "GITHUB_TOKEN"

	keyringService = "epsync"
	keyringUser    = "github-token"
)

// ResolveToken resolves the GitHub access token from the ambient environment.
//
// Lookup order:
//  1. the GITHUB_TOKEN environment variable
//  2. a .env file (dotenvFiles override the default ".env" location)
//  3. the OS keyring, service "epsync", user "github-token"
//
// Returns an error when no source yields a token.
func ResolveToken(dotenvFiles ...string) (string, error) {
	if token := os.Getenv(TokenEnvVar); token != "" {
		return token, nil
	}

	// godotenv.Read defaults to ".env" in the working directory
	if env, err := godotenv.Read(dotenvFiles...); err == nil {
		if token := env[TokenEnvVar]; token != "" {
			return token, nil
		}
	}

	if token, err := keyring.Get(keyringService, keyringUser); err == nil && token != "" {
		return token, nil
	}

	return "", fmt.Errorf(
		"no GitHub token found: set %s, add it to a .env file, or store it in the OS keyring (service %q, user %q)",
		TokenEnvVar, keyringService, keyringUser,
	)
}
