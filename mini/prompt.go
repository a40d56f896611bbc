package mini

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/ledpal/ledpal/color"
	"github.com/ledpal/ledpal/icon"
	"github.com/ledpal/ledpal/style"
	"github.com/ledpal/ledpal/util"
	"github.com/samber/lo"
)

func title(t string) {
	fmt.Println(style.Title(t))
}

func fail(msg string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(msg))
}

func success(msg string) {
	fmt.Printf("%s %s\n", icon.Get(icon.Success), msg)
}

func isInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr)
}

// menu asks to pick one of items and returns its index.
func menu[T fmt.Stringer](message string, items []T) (int, error) {
	options := lo.Map(items, func(item T, _ int) string {
		return style.Truncate(truncateAt)(item.String())
	})

	var index int
	err := survey.AskOne(&survey.Select{
		Message:  message,
		Options:  options,
		PageSize: util.Max(5, util.Min(len(options), 15)),
	}, &index)
	return index, err
}

func input(message, def string, validate func(string) error) (string, error) {
	var response string
	err := survey.AskOne(&survey.Input{
		Message: message,
		Default: def,
	}, &response, survey.WithValidator(func(ans interface{}) error {
		s, _ := ans.(string)
		return validate(s)
	}))
	return response, err
}

func confirm(message string) (bool, error) {
	var response bool
	err := survey.AskOne(&survey.Confirm{
		Message: message,
		Default: false,
	}, &response)
	return response, err
}
