package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/stockpile/internal/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			c.io.Println("Not authenticated. Run 'stockpile login' to start.")
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	c.io.Println("=== Session ===")
	c.io.Printf("Subject:  %s\n", session.Subject)
	c.io.Printf("Saved at: %s\n", time.UnixMilli(session.SavedAt).Format(time.RFC3339))

	if subject := c.manager.Subject(); subject != "" {
		c.io.Printf("Store:    open (%s)\n", subject)
	} else {
		c.io.Println("Store:    closed")
	}

	return nil
}
