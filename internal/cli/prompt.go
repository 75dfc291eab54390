package cli

import (
	"github.com/manifoldco/promptui"
)

// confirmPrompt asks the user a yes/no question and returns their choice.
func confirmPrompt(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	return err == nil
}
