package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/stockpile/internal/identity"
	"github.com/iudanet/stockpile/internal/storage"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()
	c.io.Println("Paste the tokens issued by your identity provider.")
	c.io.Println("Either token may be left empty.")
	c.io.Println()

	// Токены не выводим на экран
	idToken, err := c.io.ReadSecret("ID token (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read ID token: %w", err)
	}

	accessToken, err := c.io.ReadSecret("Access token (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read access token: %w", err)
	}

	tokens := identity.Tokens{
		AccessToken: accessToken,
		IDToken:     idToken,
	}

	// Определяем subject: claims токенов, затем userinfo
	subject, err := c.resolver.Resolve(ctx, tokens)
	if err != nil {
		return fmt.Errorf("failed to resolve identity: %w", err)
	}

	session := &storage.SessionData{
		Subject:     subject,
		AccessToken: accessToken,
		IDToken:     idToken,
		SavedAt:     time.Now().UnixMilli(),
	}

	if err := c.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	// Сразу открываем хранилище пользователя
	if _, err := c.manager.OpenForUser(ctx, subject); err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Logged in successfully!")
	c.io.Printf("Subject: %s\n", subject)

	return nil
}
