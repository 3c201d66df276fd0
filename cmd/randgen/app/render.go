package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"randgen/cmd/randgen/app/config"
	"randgen/cmd/randgen/app/options"

	"github.com/gosuri/uitable"
)

func render(w io.Writer, nums []int, format string) error {
	var out string
	switch format {
	case config.FormatList:
		out = join(nums, ", ")
	case config.FormatLines:
		out = join(nums, "\n")
	case config.FormatTable:
		table := uitable.New()
		table.RightAlign(0)
		table.RightAlign(1)
		table.AddRow("#", "VALUE")
		for i, n := range nums {
			table.AddRow(i+1, n)
		}
		out = table.String()
	default:
		return options.ValidateFormat(format)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

func join(nums []int, sep string) string {
	s := make([]string, len(nums))
	for i, n := range nums {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, sep)
}
