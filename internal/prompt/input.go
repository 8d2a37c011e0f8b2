package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	PromptWithSuggestion(prompt, text string, pos int) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// TextInputWithPrompter provides simple text input using a custom prompter
func TextInputWithPrompter(prompter Prompter, prompt string) (string, error) {
	coloredPrompt := color.CyanString(prompt + " ")
	result, err := prompter.Prompt(coloredPrompt)
	if err != nil {
		return "", wrapPromptError(err)
	}
	return result, nil
}

// EditValue asks for a new value of key with the current value prefilled.
func EditValue(prompter Prompter, key, current string) (string, error) {
	coloredPrompt := color.CyanString(key+":") + " "
	result, err := prompter.PromptWithSuggestion(coloredPrompt, current, -1)
	if err != nil {
		return "", wrapPromptError(err)
	}
	return result, nil
}

func wrapPromptError(err error) error {
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return ErrCancelled
	}
	return fmt.Errorf("text input failed: %w", err)
}
