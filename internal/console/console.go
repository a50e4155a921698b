// Package console drives a register from line-oriented text commands.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/noah-isme/checkout-pricing/internal/pricing"
	"github.com/noah-isme/checkout-pricing/internal/register"
)

// ErrUnknownCommand is reported for unrecognised input lines.
var ErrUnknownCommand = errors.New("unknown command")

// Console reads commands from In and writes results to Out.
type Console struct {
	Register *register.Register
	Out      io.Writer
	Logger   zerolog.Logger
}

// Run processes commands until in is exhausted. Command failures are written
// to Out and do not stop the loop.
func (c *Console) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := c.Exec(line); err != nil {
			c.Logger.Debug().Err(err).Str("line", line).Msg("command_failed")
			fmt.Fprintf(c.Out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

// Exec runs a single command line.
func (c *Console) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "scan", "remove":
		if len(args) == 0 {
			return fmt.Errorf("%s: product name required", cmd)
		}
		name, weight := splitWeight(args)
		var (
			amount pricing.Money
			err    error
		)
		if cmd == "scan" {
			amount, err = c.Register.Scan(name, weight)
		} else {
			amount, err = c.Register.Remove(name, weight)
			amount = -amount
		}
		if err != nil {
			return fmt.Errorf("%s %s: %w", cmd, name, err)
		}
		fmt.Fprintf(c.Out, "%s %s %+d total %s\n", cmd, name, amount, FormatMoney(c.Register.Total()))
	case "qty":
		if len(args) == 0 {
			return errors.New("qty: product name required")
		}
		name := strings.Join(args, " ")
		fmt.Fprintf(c.Out, "%s %d\n", name, c.Register.Quantity(name))
	case "total":
		fmt.Fprintln(c.Out, FormatMoney(c.Register.Total()))
	case "lines":
		for _, l := range c.Register.Lines() {
			fmt.Fprintf(c.Out, "%s %d\n", l.Name, l.Quantity)
		}
	case "products":
		for _, name := range c.Register.Inventory().Names() {
			fmt.Fprintln(c.Out, name)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
	return nil
}

// splitWeight treats a trailing integer as the weight; the rest is the name.
func splitWeight(args []string) (string, int64) {
	if len(args) > 1 {
		if w, err := strconv.ParseInt(args[len(args)-1], 10, 64); err == nil {
			return strings.Join(args[:len(args)-1], " "), w
		}
	}
	return strings.Join(args, " "), register.NoWeight
}

// FormatMoney renders minor units with two decimals.
func FormatMoney(m pricing.Money) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%d.%02d", sign, m/100, m%100)
}
