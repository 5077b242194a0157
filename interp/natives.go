/*
File    : loxwalk/interp/natives.go

RegisterNatives installs the native-function table: a small core (clock,
sleep, print/println, read_line, parse, dbg) plus an extended surface of
math, string, crypto/encoding, regex, time, and json helpers — restricted
throughout to Number/String/Boolean/Nil operands and results so the Value
model itself never grows.
*/
package interp

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/gomix-labs/loxwalk/callable"
	"github.com/gomix-labs/loxwalk/value"
)

func native(name string, arity int, fn func([]value.Value) (value.Value, error)) *callable.Native {
	return &callable.Native{Name: name, ArityCount: arity, Fn: fn}
}

func wantNumber(args []value.Value, idx int, fname string) (float64, error) {
	if !args[idx].IsNumber() {
		return 0, fmt.Errorf("%s: argument %d must be a number", fname, idx+1)
	}
	return args[idx].AsNumber(), nil
}

func wantString(args []value.Value, idx int, fname string) (string, error) {
	if !args[idx].IsString() {
		return "", fmt.Errorf("%s: argument %d must be a string", fname, idx+1)
	}
	return args[idx].AsString(), nil
}

// RegisterNatives defines every native function in i.Globals.
func RegisterNatives(i *Interpreter) {
	define := func(c *callable.Native) {
		i.Globals.Define(c.Name, value.NewCallable(c))
	}

	// --- core table ---

	define(native("clock", 0, func(args []value.Value) (value.Value, error) {
		return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
	}))
	define(native("sleep_secs", 1, func(args []value.Value) (value.Value, error) {
		n, err := wantNumber(args, 0, "sleep_secs")
		if err != nil {
			return value.Nil(), err
		}
		time.Sleep(time.Duration(n * float64(time.Second)))
		return value.Nil(), nil
	}))
	define(native("sleep_millis", 1, func(args []value.Value) (value.Value, error) {
		n, err := wantNumber(args, 0, "sleep_millis")
		if err != nil {
			return value.Nil(), err
		}
		time.Sleep(time.Duration(int64(n)) * time.Millisecond)
		return value.Nil(), nil
	}))
	define(native("print", 1, func(args []value.Value) (value.Value, error) {
		i.Stdout.WriteString(args[0].Display())
		return value.Nil(), nil
	}))
	define(native("println", 1, func(args []value.Value) (value.Value, error) {
		i.Stdout.WriteString(args[0].Display() + "\n")
		return value.Nil(), nil
	}))
	define(native("read_line", 0, func(args []value.Value) (value.Value, error) {
		if i.Stdin == nil {
			return value.Nil(), fmt.Errorf("read_line: no input source available")
		}
		line, err := i.Stdin.ReadLine()
		if err != nil {
			return value.Nil(), nil
		}
		return value.String(line), nil
	}))
	define(native("parse", 1, func(args []value.Value) (value.Value, error) {
		if !args[0].IsString() {
			return value.Nil(), nil
		}
		return parseFloatOrNil(args[0].AsString()), nil
	}))
	define(native("dbg", 2, func(args []value.Value) (value.Value, error) {
		if !args[0].IsString() {
			return value.Nil(), fmt.Errorf("dbg: label must be a string")
		}
		i.Stdout.WriteString(fmt.Sprintf("%s => %s\n", args[0].AsString(), args[1].Debug()))
		return value.Nil(), nil
	}))

	// --- SPEC_FULL.md §2 domain stack: math (stdlib math) ---

	unaryMath := func(name string, fn func(float64) float64) *callable.Native {
		return native(name, 1, func(args []value.Value) (value.Value, error) {
			n, err := wantNumber(args, 0, name)
			if err != nil {
				return value.Nil(), err
			}
			return value.Number(fn(n)), nil
		})
	}
	define(unaryMath("abs", math.Abs))
	define(unaryMath("floor", math.Floor))
	define(unaryMath("ceil", math.Ceil))
	define(unaryMath("round", math.Round))
	define(unaryMath("sqrt", math.Sqrt))
	define(unaryMath("sin", math.Sin))
	define(unaryMath("cos", math.Cos))
	define(unaryMath("tan", math.Tan))
	define(unaryMath("log", math.Log))
	define(unaryMath("log10", math.Log10))
	define(unaryMath("exp", math.Exp))

	define(native("pow", 2, func(args []value.Value) (value.Value, error) {
		base, err := wantNumber(args, 0, "pow")
		if err != nil {
			return value.Nil(), err
		}
		exp, err := wantNumber(args, 1, "pow")
		if err != nil {
			return value.Nil(), err
		}
		return value.Number(math.Pow(base, exp)), nil
	}))
	define(native("min", 2, func(args []value.Value) (value.Value, error) {
		a, err := wantNumber(args, 0, "min")
		if err != nil {
			return value.Nil(), err
		}
		b, err := wantNumber(args, 1, "min")
		if err != nil {
			return value.Nil(), err
		}
		return value.Number(math.Min(a, b)), nil
	}))
	define(native("max", 2, func(args []value.Value) (value.Value, error) {
		a, err := wantNumber(args, 0, "max")
		if err != nil {
			return value.Nil(), err
		}
		b, err := wantNumber(args, 1, "max")
		if err != nil {
			return value.Nil(), err
		}
		return value.Number(math.Max(a, b)), nil
	}))

	// --- SPEC_FULL.md §2 domain stack: strings (stdlib strings) ---

	define(native("upper", 1, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "upper")
		if err != nil {
			return value.Nil(), err
		}
		return value.String(strings.ToUpper(s)), nil
	}))
	define(native("lower", 1, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "lower")
		if err != nil {
			return value.Nil(), err
		}
		return value.String(strings.ToLower(s)), nil
	}))
	define(native("trim", 1, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "trim")
		if err != nil {
			return value.Nil(), err
		}
		return value.String(strings.TrimSpace(s)), nil
	}))
	define(native("str_len", 1, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "str_len")
		if err != nil {
			return value.Nil(), err
		}
		return value.Number(float64(len([]rune(s)))), nil
	}))
	define(native("contains2", 2, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "contains2")
		if err != nil {
			return value.Nil(), err
		}
		sub, err := wantString(args, 1, "contains2")
		if err != nil {
			return value.Nil(), err
		}
		return value.Boolean(strings.Contains(s, sub)), nil
	}))
	define(native("starts_with", 2, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "starts_with")
		if err != nil {
			return value.Nil(), err
		}
		prefix, err := wantString(args, 1, "starts_with")
		if err != nil {
			return value.Nil(), err
		}
		return value.Boolean(strings.HasPrefix(s, prefix)), nil
	}))
	define(native("ends_with", 2, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "ends_with")
		if err != nil {
			return value.Nil(), err
		}
		suffix, err := wantString(args, 1, "ends_with")
		if err != nil {
			return value.Nil(), err
		}
		return value.Boolean(strings.HasSuffix(s, suffix)), nil
	}))
	define(native("str_index", 2, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "str_index")
		if err != nil {
			return value.Nil(), err
		}
		sub, err := wantString(args, 1, "str_index")
		if err != nil {
			return value.Nil(), err
		}
		return value.Number(float64(strings.Index(s, sub))), nil
	}))
	define(native("substring", 3, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "substring")
		if err != nil {
			return value.Nil(), err
		}
		start, err := wantNumber(args, 1, "substring")
		if err != nil {
			return value.Nil(), err
		}
		end, err := wantNumber(args, 2, "substring")
		if err != nil {
			return value.Nil(), err
		}
		runes := []rune(s)
		lo, hi := int(start), int(end)
		if lo < 0 || hi > len(runes) || lo > hi {
			return value.Nil(), fmt.Errorf("substring: index out of range")
		}
		return value.String(string(runes[lo:hi])), nil
	}))
	define(native("split2", 2, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "split2")
		if err != nil {
			return value.Nil(), err
		}
		sep, err := wantString(args, 1, "split2")
		if err != nil {
			return value.Nil(), err
		}
		// The Value model has no collection variant; split2 returns the
		// number of parts rather than the parts themselves.
		return value.Number(float64(len(strings.Split(s, sep)))), nil
	}))
	define(native("join2", 2, func(args []value.Value) (value.Value, error) {
		a, err := wantString(args, 0, "join2")
		if err != nil {
			return value.Nil(), err
		}
		b, err := wantString(args, 1, "join2")
		if err != nil {
			return value.Nil(), err
		}
		return value.String(a + b), nil
	}))

	// --- SPEC_FULL.md §2 domain stack: crypto/encoding (stdlib) ---

	define(native("md5_hex", 1, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "md5_hex")
		if err != nil {
			return value.Nil(), err
		}
		sum := md5.Sum([]byte(s))
		return value.String(hex.EncodeToString(sum[:])), nil
	}))
	define(native("sha256_hex", 1, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "sha256_hex")
		if err != nil {
			return value.Nil(), err
		}
		sum := sha256.Sum256([]byte(s))
		return value.String(hex.EncodeToString(sum[:])), nil
	}))
	define(native("base64_encode", 1, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "base64_encode")
		if err != nil {
			return value.Nil(), err
		}
		return value.String(base64.StdEncoding.EncodeToString([]byte(s))), nil
	}))
	define(native("base64_decode", 1, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "base64_decode")
		if err != nil {
			return value.Nil(), err
		}
		decoded, decErr := base64.StdEncoding.DecodeString(s)
		if decErr != nil {
			return value.Nil(), fmt.Errorf("base64_decode: %s", decErr)
		}
		return value.String(string(decoded)), nil
	}))

	// --- SPEC_FULL.md §2 domain stack: regex (stdlib regexp) ---

	define(native("regex_match", 2, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "regex_match")
		if err != nil {
			return value.Nil(), err
		}
		pattern, err := wantString(args, 1, "regex_match")
		if err != nil {
			return value.Nil(), err
		}
		re, compErr := regexp.Compile(pattern)
		if compErr != nil {
			return value.Nil(), fmt.Errorf("regex_match: %s", compErr)
		}
		return value.Boolean(re.MatchString(s)), nil
	}))
	define(native("regex_replace", 3, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "regex_replace")
		if err != nil {
			return value.Nil(), err
		}
		pattern, err := wantString(args, 1, "regex_replace")
		if err != nil {
			return value.Nil(), err
		}
		replacement, err := wantString(args, 2, "regex_replace")
		if err != nil {
			return value.Nil(), err
		}
		re, compErr := regexp.Compile(pattern)
		if compErr != nil {
			return value.Nil(), fmt.Errorf("regex_replace: %s", compErr)
		}
		return value.String(re.ReplaceAllString(s, replacement)), nil
	}))

	// --- SPEC_FULL.md §2 domain stack: time/json ---

	define(native("format_clock", 1, func(args []value.Value) (value.Value, error) {
		n, err := wantNumber(args, 0, "format_clock")
		if err != nil {
			return value.Nil(), err
		}
		secs := int64(n)
		nanos := int64((n - float64(secs)) * 1e9)
		t := time.Unix(secs, nanos).UTC()
		return value.String(t.Format(time.RFC3339)), nil
	}))
	define(native("json_quote", 1, func(args []value.Value) (value.Value, error) {
		s, err := wantString(args, 0, "json_quote")
		if err != nil {
			return value.Nil(), err
		}
		encoded, encErr := json.Marshal(s)
		if encErr != nil {
			return value.Nil(), fmt.Errorf("json_quote: %s", encErr)
		}
		return value.String(string(encoded)), nil
	}))
}
