package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/purposeinplay/go-money/errors"
	"github.com/purposeinplay/go-money/money"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitOK       = 0
	exitInvalid  = 1
	exitMismatch = 2
	exitUsage    = 64
)

type command struct {
	args  string
	arity int
	run   func(p parser, args []string) (any, error)
}

var commands = map[string]command{
	"add": {
		args:  "A B",
		arity: 2,
		run: func(p parser, args []string) (any, error) {
			return binary(p, args, money.Money.Add)
		},
	},
	"subtract": {
		args:  "A B",
		arity: 2,
		run: func(p parser, args []string) (any, error) {
			return binary(p, args, money.Money.Subtract)
		},
	},
	"compare": {
		args:  "A B",
		arity: 2,
		run: func(p parser, args []string) (any, error) {
			a, b, err := p.pair(args)
			if err != nil {
				return nil, err
			}

			c, err := a.Compare(b)
			if err != nil {
				return nil, err
			}

			return strconv.Itoa(c), nil
		},
	},
	"percentage": {
		args:  "A PERCENT",
		arity: 2,
		run: func(p parser, args []string) (any, error) {
			return adjust(p, args, money.Money.Percentage)
		},
	},
	"discount": {
		args:  "A PERCENT",
		arity: 2,
		run: func(p parser, args []string) (any, error) {
			return adjust(p, args, money.Money.ApplyDiscount)
		},
	},
	"rise": {
		args:  "A PERCENT",
		arity: 2,
		run: func(p parser, args []string) (any, error) {
			return adjust(p, args, money.Money.ApplyRise)
		},
	},
	"negate": {
		args:  "A",
		arity: 1,
		run: func(p parser, args []string) (any, error) {
			a, err := p.money(args[0])
			if err != nil {
				return nil, err
			}

			return a.Negated(), nil
		},
	},
	"percentage-of": {
		args:  "A B",
		arity: 2,
		run: func(p parser, args []string) (any, error) {
			a, b, err := p.pair(args)
			if err != nil {
				return nil, err
			}

			return a.PercentageOf(b)
		},
	},
	"display": {
		args:  "A",
		arity: 1,
		run: func(p parser, args []string) (any, error) {
			a, err := p.money(args[0])
			if err != nil {
				return nil, err
			}

			return a.ToDisplay(), nil
		},
	},
	"valid": {
		args:  "A",
		arity: 1,
		run: func(p parser, args []string) (any, error) {
			return strconv.FormatBool(money.IsValidMoney(p.shape(args[0]))), nil
		},
	},
}

// run evaluates a single command and returns the process exit code.
func run(
	args []string,
	cfg Config,
	log *zap.Logger,
	stdout, stderr io.Writer,
) int {
	fs := flag.NewFlagSet("money", flag.ContinueOnError)
	fs.SetOutput(stderr)

	currencyCode := fs.String(
		"currency",
		cfg.DefaultCurrency,
		"currency code of amounts given without one",
	)

	fs.Usage = func() { usage(fs, stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()

		return exitUsage
	}

	name, operands := rest[0], rest[1:]

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", name)
		fs.Usage()

		return exitUsage
	}

	if len(operands) != cmd.arity {
		fmt.Fprintf(stderr, "usage: money %s %s\n", name, cmd.args)

		return exitUsage
	}

	log = log.With(zap.String("command", name))

	result, err := cmd.run(parser{currencyCode: *currencyCode}, operands)
	if err != nil {
		log.Error("command failed", zap.Strings("args", operands), zap.Error(err))

		fmt.Fprintln(stderr, err)

		return exitCode(err)
	}

	switch r := result.(type) {
	case money.Money:
		log.Debug("command evaluated", zap.Object("result", r))

		b, err := json.Marshal(r)
		if err != nil {
			fmt.Fprintln(stderr, err)

			return exitInvalid
		}

		fmt.Fprintln(stdout, string(b))

	default:
		log.Debug("command evaluated", zap.Any("result", r))

		fmt.Fprintln(stdout, r)
	}

	return exitOK
}

func usage(fs *flag.FlagSet, w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}

	sort.Strings(names)

	fmt.Fprintln(w, "usage: money [flags] <command> <args>")
	fmt.Fprintln(w, "\ncommands:")

	for _, name := range names {
		fmt.Fprintf(w, "  %s %s\n", name, commands[name].args)
	}

	fmt.Fprintln(w, "\namounts are JSON records or bare decimals in -currency.")
	fmt.Fprintln(w, "\nflags:")
	fs.PrintDefaults()
}

func exitCode(err error) int {
	if errors.IsErrorType(err, errors.ErrorTypeMismatch) {
		return exitMismatch
	}

	return exitInvalid
}

type parser struct {
	currencyCode string
}

// money parses a JSON record or a bare amount.
func (p parser) money(arg string) (money.Money, error) {
	arg = strings.TrimSpace(arg)

	if !strings.HasPrefix(arg, "{") {
		return money.FromAmount(arg, p.currencyCode)
	}

	var m money.Money

	if err := json.Unmarshal([]byte(arg), &m); err != nil {
		if errors.Is(err, money.ErrInvalidAmount) {
			return money.Money{}, err
		}

		return money.Money{}, fmt.Errorf("%w: record %s: %s", money.ErrInvalidAmount, arg, err)
	}

	return m, nil
}

func (p parser) pair(args []string) (money.Money, money.Money, error) {
	a, err := p.money(args[0])
	if err != nil {
		return money.Money{}, money.Money{}, err
	}

	b, err := p.money(args[1])
	if err != nil {
		return money.Money{}, money.Money{}, err
	}

	return a, b, nil
}

// shape returns arg in the form IsValidMoney inspects:
// a decoded JSON object, or a record holding a bare amount.
func (p parser) shape(arg string) any {
	arg = strings.TrimSpace(arg)

	if !strings.HasPrefix(arg, "{") {
		return money.Record{Amount: arg, Currency: p.currencyCode}
	}

	var v any

	if err := json.Unmarshal([]byte(arg), &v); err != nil {
		return nil
	}

	return v
}

// percent parses arg within the amount range.
func (p parser) percent(arg string) (decimal.Decimal, error) {
	m, err := money.FromAmount(strings.TrimSpace(arg), p.currencyCode)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: percent %q", money.ErrInvalidAmount, arg)
	}

	return m.Decimal(), nil
}

func binary(
	p parser,
	args []string,
	op func(money.Money, money.Operand) (money.Money, error),
) (any, error) {
	a, b, err := p.pair(args)
	if err != nil {
		return nil, err
	}

	return op(a, b)
}

func adjust(
	p parser,
	args []string,
	op func(money.Money, decimal.Decimal) money.Money,
) (any, error) {
	a, err := p.money(args[0])
	if err != nil {
		return nil, err
	}

	percent, err := p.percent(args[1])
	if err != nil {
		return nil, err
	}

	return op(a, percent), nil
}
