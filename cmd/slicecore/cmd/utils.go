package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hiddenvs/slicecore/profile"
	"github.com/hiddenvs/slicecore/sliceio"
)

// confirmIfExists checks that a file exists, and asks the user for
// confirmation before letting a command overwrite it. It returns true if
// the file doesn't exist, or if the user answered yes.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return askForConfirmation(msg), nil
}

// askForConfirmation shows msg and asks the user to type y or n (ENTER
// defaults to no).
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	for {
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			return false
		}
		switch input[0] {
		case 'Y', 'y':
			return true
		case 'N', 'n':
			return false
		}
	}
}

func check(err error) {
	if err != nil {
		fmt.Println("error,", err)
		os.Exit(1)
	}
}

// parseRanges parses a set of "lo:hi:height" flag values into
// profile.LayerRange values.
func parseRanges(vals []string) ([]profile.LayerRange, error) {
	ranges := make([]profile.LayerRange, 0, len(vals))
	for _, v := range vals {
		parts := strings.Split(v, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("range %q: want lo:hi:height", v)
		}
		lo, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("range %q: %v", v, err)
		}
		hi, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("range %q: %v", v, err)
		}
		h, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("range %q: %v", v, err)
		}
		ranges = append(ranges, profile.LayerRange{Lo: lo, Hi: hi, Height: h})
	}
	return ranges, nil
}

func newContext() *sliceio.Context {
	return sliceio.NewContext(verbose)
}

func dumpIfVerbose(ctx *sliceio.Context, header string) {
	if verbose {
		ctx.DumpLog(header)
	}
}
