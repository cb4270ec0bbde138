// Copyright (C) 2024, TokenForge, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/require"
)

func withPromptInput(t *testing.T, input string) {
	t.Helper()
	orig := promptUIRunner
	promptUIRunner = func(prompt promptui.Prompt) (string, error) {
		if prompt.Validate != nil {
			if err := prompt.Validate(input); err != nil {
				return "", err
			}
		}
		return input, nil
	}
	t.Cleanup(func() { promptUIRunner = orig })
}

func withSelectChoice(t *testing.T, choice string) {
	t.Helper()
	orig := promptUISelectRunner
	promptUISelectRunner = func(promptui.Select) (int, string, error) {
		return 0, choice, nil
	}
	t.Cleanup(func() { promptUISelectRunner = orig })
}

func TestCaptureString(t *testing.T) {
	withPromptInput(t, "my-token")
	got, err := NewPrompter().CaptureString("Project name")
	require.NoError(t, err)
	require.Equal(t, "my-token", got)
}

func TestCaptureStringRejectsEmpty(t *testing.T) {
	withPromptInput(t, "")
	_, err := NewPrompter().CaptureString("Project name")
	require.Error(t, err)
}

func TestCaptureUint64(t *testing.T) {
	withPromptInput(t, "1000000")
	got, err := NewPrompter().CaptureUint64("Token supply")
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), got)

	withPromptInput(t, "-5")
	_, err = NewPrompter().CaptureUint64("Token supply")
	require.Error(t, err)
}

func TestCaptureAddress(t *testing.T) {
	withPromptInput(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	got, err := NewPrompter().CaptureAddress("Address")
	require.NoError(t, err)
	require.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", got.Hex())

	withPromptInput(t, "not-an-address")
	_, err = NewPrompter().CaptureAddress("Address")
	require.Error(t, err)
}

func TestCaptureYesNo(t *testing.T) {
	withSelectChoice(t, Yes)
	got, err := NewPrompter().CaptureYesNo("Continue?")
	require.NoError(t, err)
	require.True(t, got)

	withSelectChoice(t, No)
	got, err = NewPrompter().CaptureYesNo("Continue?")
	require.NoError(t, err)
	require.False(t, got)
}
