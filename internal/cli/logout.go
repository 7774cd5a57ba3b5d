package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/stockpile/internal/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	// Удаляем сессию; отсутствие сессии не считаем ошибкой
	if err := c.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	// Закрываем хранилище, данные на диске остаются
	if err := c.manager.Reset(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}

	c.io.Println("✓ Logged out.")

	return nil
}
