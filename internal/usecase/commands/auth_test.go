//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	reqdto "github.com/rahma103/calendrier-reservation-v2/internal/handler/dto/request"
	"github.com/rahma103/calendrier-reservation-v2/internal/infra/directory"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/errs"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/jwt"
	"github.com/rahma103/calendrier-reservation-v2/internal/pkg/password"
	"github.com/rahma103/calendrier-reservation-v2/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeUsersFile(t *testing.T, users map[string]string) string {
	t.Helper()

	hashed := make(map[string]string, len(users))
	for username, plain := range users {
		hash, err := password.Hash(plain)
		require.NoError(t, err)
		hashed[username] = hash
	}

	data, err := json.Marshal(hashed)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLogin(t *testing.T) {
	path := writeUsersFile(t, map[string]string{"rahma": "motdepasse"})
	jwtService := jwt.NewService("test-secret", time.Hour)
	auth := commands.NewAuthCommands(directory.NewFileDirectory(path), jwtService)
	ctx := context.Background()

	t.Run("valid credentials issue a token", func(t *testing.T) {
		result, err := auth.Login(ctx, reqdto.LoginRequest{Username: "rahma", Password: "motdepasse"})
		require.NoError(t, err)
		assert.Equal(t, "rahma", result.Username)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "rahma", claims.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(ctx, reqdto.LoginRequest{Username: "rahma", Password: "autre"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := auth.Login(ctx, reqdto.LoginRequest{Username: "inconnu", Password: "motdepasse"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("missing users file", func(t *testing.T) {
		missing := commands.NewAuthCommands(directory.NewFileDirectory(filepath.Join(t.TempDir(), "absent.json")), jwtService)
		_, err := missing.Login(ctx, reqdto.LoginRequest{Username: "rahma", Password: "motdepasse"})
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}
