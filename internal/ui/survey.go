package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption replaces survey's question mark with "-" to match the huh
// prompts.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}

// Confirm asks a yes/no question for destructive actions. Ctrl+C surfaces
// as terminal.InterruptErr.
func Confirm(message string, def bool) (bool, error) {
	answer := def
	prompt := &survey.Confirm{Message: message, Default: def}
	if err := survey.AskOne(prompt, &answer, IconOption()); err != nil {
		return false, err
	}
	return answer, nil
}
