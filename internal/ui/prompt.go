package ui

import (
	"errors"
	"io"

	"github.com/manifoldco/promptui"

	"github.com/coffe/quicktube2/internal/model"
)

// Select shows a pickable list and returns the index and label of the
// chosen item. A cancelled prompt (ctrl-c, EOF) maps to
// model.ErrPromptCancelled so callers can unwind one menu level.
func Select(label string, items []string) (int, string, error) {
	sel := promptui.Select{
		Label:        label,
		Items:        items,
		Size:         len(items),
		HideSelected: true,
	}
	if sel.Size > 12 {
		sel.Size = 12
	}
	idx, choice, err := sel.Run()
	if err != nil {
		return 0, "", mapPromptErr(err)
	}
	return idx, choice, nil
}

// Input prompts for one line of free text. Cancelled prompts map to
// model.ErrPromptCancelled; the returned string is trimmed by the caller.
func Input(label, defaultVal string) (string, error) {
	prompt := promptui.Prompt{
		Label:       label,
		Default:     defaultVal,
		AllowEdit:   true,
		HideEntered: true,
	}
	out, err := prompt.Run()
	if err != nil {
		return "", mapPromptErr(err)
	}
	return out, nil
}

func mapPromptErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) || errors.Is(err, io.EOF) {
		return model.ErrPromptCancelled
	}
	return err
}
