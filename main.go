package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/larynjahor/lists/data"
	"github.com/larynjahor/lists/internal/config"
	"github.com/larynjahor/lists/internal/script"
	"github.com/larynjahor/lists/logging"
)

// samplePrefix selects a bundled script instead of a file, e.g. "sample:array".
const samplePrefix = "sample:"

var errUnknownSample = errors.New("unknown sample")

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}

	c := logging.Auto(cfg.LogFile)
	defer c.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, cfg config.Config, args []string, stdin io.Reader, stdout io.Writer) error {
	slog.Info("started lists", slog.Int("default_size", cfg.DefaultSize), slog.Int("parallelism", cfg.Parallelism))
	defer slog.Info("exited lists")

	scripts, err := readScripts(args, stdin)
	if err != nil {
		return err
	}

	runner := script.New(cfg.DefaultSize, cfg.Separator, cfg.Parallelism)

	var resp Response

	resp.Reports, err = runner.Run(ctx, scripts...)
	if err != nil {
		slog.Error("script run failed", slog.Any("err", err), slog.Int("scripts", len(scripts)))
	}

	return errors.Join(err, writeResponse(stdout, &resp))
}

// readScripts loads every script named in args, or a single script from
// stdin when args is empty. An arg is either a file path or a bundled
// sample such as "sample:linked".
func readScripts(args []string, stdin io.Reader) ([]*script.Script, error) {
	if len(args) == 0 {
		s, err := script.Decode(stdin)
		if err != nil {
			return nil, err
		}

		if s.Name == "" {
			s.Name = "stdin"
		}

		return []*script.Script{s}, nil
	}

	scripts := make([]*script.Script, 0, len(args))

	for _, arg := range args {
		s, err := readScript(arg)
		if err != nil {
			return nil, err
		}

		scripts = append(scripts, s)
	}

	return scripts, nil
}

func readScript(arg string) (*script.Script, error) {
	name, ok := strings.CutPrefix(arg, samplePrefix)
	if !ok {
		return script.Load(os.DirFS(filepath.Dir(arg)), filepath.Base(arg))
	}

	if !slices.Contains(data.Names(), name) {
		return nil, fmt.Errorf("%w %q, have %v", errUnknownSample, name, data.Names())
	}

	return script.Load(data.FS, data.File(name))
}

func writeResponse(w io.Writer, resp *Response) error {
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return err
	}

	return nil
}

type Response struct {
	Reports []script.Report `json:"reports"`
}
