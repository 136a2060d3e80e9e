package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/spiderweb/web"
)

// errQuit ends a run session.
var errQuit = errors.New("quit")

// errUsage reports a malformed command line.
var errUsage = errors.New("usage")

const runHelp = `commands:
  add v | addfirst v | insert i v | set i v
  get i | first | last | level l | prevlevel l | maxindex l
  indexof v | lastindexof v
  removefirst | removelast | removeat i | clear
  size | print | help | quit`

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Read web commands from stdin, one per line",
		Long:  "Run keeps a single web of strings and applies one command per input line.\n\n" + runHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.newWeb()
			if err != nil {
				return err
			}

			return session(w, cmd.InOrStdin(), cmd.OutOrStdout(), a.logger)
		},
	}
}

// session applies every line of in to w. Command errors are reported on out
// and the session goes on; only read/write failures end it with an error.
func session(w *web.Web[string], in io.Reader, out io.Writer, logger *zap.Logger) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		err := execute(w, line, out)
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			logger.Debug("command failed", zap.String("line", line), zap.Error(err))
			if _, werr := fmt.Fprintln(out, "error:", err); werr != nil {
				return werr
			}
		}
	}

	return sc.Err()
}

// execute runs a single command line against w.
func execute(w *web.Web[string], line string, out io.Writer) error {
	fields := strings.Fields(line)
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "quit", "exit":
		return errQuit
	case "help":
		_, err := fmt.Fprintln(out, runHelp)
		return err
	case "add", "addlast":
		if len(args) != 1 {
			return fmt.Errorf("%w: %s v", errUsage, name)
		}
		w.Add(args[0])
		return nil
	case "addfirst":
		if len(args) != 1 {
			return fmt.Errorf("%w: addfirst v", errUsage)
		}
		w.AddFirst(args[0])
		return nil
	case "insert", "set":
		if len(args) != 2 {
			return fmt.Errorf("%w: %s i v", errUsage, name)
		}
		i, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: index %q", errUsage, args[0])
		}
		if name == "insert" {
			return w.Insert(i, args[1])
		}
		return w.Set(i, args[1])
	case "get", "removeat", "level", "prevlevel", "maxindex":
		if len(args) != 1 {
			return fmt.Errorf("%w: %s n", errUsage, name)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: number %q", errUsage, args[0])
		}
		return numbered(w, name, n, out)
	case "indexof", "lastindexof":
		if len(args) != 1 {
			return fmt.Errorf("%w: %s v", errUsage, name)
		}
		i := w.IndexOf(args[0])
		if name == "lastindexof" {
			i = w.LastIndexOf(args[0])
		}
		_, err := fmt.Fprintln(out, i)
		return err
	case "first", "last", "removefirst", "removelast":
		var (
			v   string
			err error
		)
		switch name {
		case "first":
			v, err = w.First()
		case "last":
			v, err = w.Last()
		case "removefirst":
			v, err = w.RemoveFirst()
		default:
			v, err = w.RemoveLast()
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, v)
		return err
	case "clear":
		w.Clear()
		return nil
	case "size":
		_, err := fmt.Fprintln(out, w.Size())
		return err
	case "print":
		return w.Print(out)
	default:
		return fmt.Errorf("%w: unknown command %q (try help)", errUsage, name)
	}
}

// numbered handles the commands taking one integer argument.
func numbered(w *web.Web[string], name string, n int, out io.Writer) error {
	var (
		res any
		err error
	)
	switch name {
	case "get":
		res, err = w.Get(n)
	case "removeat":
		res, err = w.RemoveAt(n)
	case "level":
		res, err = w.Level(n)
	case "prevlevel":
		res, err = w.PrevLevel(n)
	default:
		res, err = w.MaxIndexForLevel(n)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, res)

	return err
}
