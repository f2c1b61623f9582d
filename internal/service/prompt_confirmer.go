package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
)

// PromptConfirmer задаёт вопрос да/нет в терминале
type PromptConfirmer struct {
	assumeYes bool
	stdin     io.ReadCloser
	stdout    io.WriteCloser
}

// NewPromptConfirmer создает подтверждение через promptui.
// При assumeYes вопрос не задаётся, ответ всегда положительный.
func NewPromptConfirmer(assumeYes bool, stdin io.ReadCloser, stdout io.WriteCloser) *PromptConfirmer {
	return &PromptConfirmer{
		assumeYes: assumeYes,
		stdin:     stdin,
		stdout:    stdout,
	}
}

// Confirm блокируется до ответа пользователя. Ответ "n" означает отказ без ошибки.
func (p *PromptConfirmer) Confirm(_ context.Context, question string) (bool, error) {
	if p.assumeYes {
		return true, nil
	}

	prompt := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
		Stdin:     p.stdin,
		Stdout:    p.stdout,
	}

	_, err := prompt.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	return true, nil
}
