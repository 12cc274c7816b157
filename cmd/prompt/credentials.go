package prompt

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

func notBlank(what string) promptui.ValidateFunc {
	return func(input string) error {
		if strings.TrimSpace(input) == "" {
			return errors.New(what + " cannot be empty")
		}
		return nil
	}
}

// Username asks for the form number used as the login name.
func Username(def string) (string, error) {
	p := promptui.Prompt{
		Label:    "Form number",
		Default:  def,
		Validate: notBlank("form number"),
	}
	s, err := p.Run()
	return strings.TrimSpace(s), err
}

// Password asks for the password with masked input.
func Password() (string, error) {
	p := promptui.Prompt{
		Label:    "Password",
		Validate: notBlank("password"),
		Mask:     '*',
	}
	return p.Run()
}

// Confirm returns true only on an explicit yes.
func Confirm(label string) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := p.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	return err == nil, err
}
