// internal/ui/prompts.go

package ui

import (
	"github.com/AlecAivazis/survey/v2"
)

// PromptConfirmation prompts for yes/no confirmation
func PromptConfirmation(message string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

// PromptServerName prompts for a host alias when one was not supplied
// on the command line.
func PromptServerName(options []string) (string, error) {
	var choice string
	prompt := &survey.Select{
		Message: "Which server?",
		Options: options,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}
	return choice, nil
}
