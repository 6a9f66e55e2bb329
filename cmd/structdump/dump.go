package main

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danmuck/structmsg/internal/config"
	"github.com/danmuck/structmsg/internal/enums"
	"github.com/danmuck/structmsg/internal/logging"
	"github.com/danmuck/structmsg/internal/observability"
	"github.com/danmuck/structmsg/internal/protocol"
	"github.com/danmuck/structmsg/internal/protocol/session"
	"github.com/rs/zerolog"
)

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("structdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to structdump config.toml")
	emsgFlag := fs.String("emsg", "", "message type id (number or name)")
	input := fs.String("input", "", "payload encoding: hex|base64 (overrides config)")
	list := fs.Bool("list", false, "list registered struct message types")
	initConfig := fs.String("init-config", "", "write a config template to this path")
	force := fs.Bool("force", false, "overwrite an existing config template")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *initConfig != "" {
		if err := config.WriteTemplate(*initConfig, *force); err != nil {
			return fail(stderr, err)
		}
		fmt.Fprintf(stdout, "wrote config template to %s\n", *initConfig)
		return 0
	}

	cfg := config.DefaultDumpConfig()
	if *configPath != "" {
		loaded, err := config.LoadDumpConfig(*configPath)
		if err != nil {
			return fail(stderr, err)
		}
		cfg = loaded
	}
	if *input != "" {
		cfg.Input = strings.ToLower(strings.TrimSpace(*input))
		if err := config.ValidateDumpConfig(cfg); err != nil {
			return fail(stderr, err)
		}
	}

	logger := newLogger(cfg, stderr)

	reg := protocol.Default()
	if *list {
		for _, id := range reg.IDs() {
			fmt.Fprintf(stdout, "%d\t%s\n", uint32(id), id)
		}
		return 0
	}

	if *emsgFlag == "" {
		return fail(stderr, errors.New("-emsg is required"))
	}
	id, err := parseEMsg(*emsgFlag)
	if err != nil {
		return fail(stderr, err)
	}

	raw, err := readPayload(fs.Args(), stdin)
	if err != nil {
		return fail(stderr, err)
	}
	body, err := decodePayload(cfg.Input, raw)
	if err != nil {
		return fail(stderr, err)
	}

	d := session.NewDispatcher(reg, session.WithLogger(logger), session.WithMetrics(false))
	in, err := d.Decode(uint32(id), body)
	if err != nil {
		if session.Skippable(err) && cfg.SkipUnregistered {
			fmt.Fprintf(stdout, "skipped: no struct codec for %s (%d)\n", id, uint32(id))
			return 0
		}
		return fail(stderr, err)
	}

	fmt.Fprintf(stdout, "# %s (%d) %d bytes\n", in.EMsg, uint32(in.EMsg), len(body))
	if cfg.ShowBody {
		fmt.Fprintf(stdout, "# body %x\n", body)
	}
	fmt.Fprintln(stdout, in.Message.String())
	return 0
}

// newLogger writes console output to stderr. The config file sets the level
// and STRUCTMSG_LOG_* variables override it.
func newLogger(cfg config.DumpConfig, stderr io.Writer) zerolog.Logger {
	lc := logging.DefaultConfig(logging.ProfileRuntime)
	lc.Out = stderr
	if level, ok := logging.ParseLevel(cfg.LogLevel); ok {
		lc.Level = level
	}
	logging.ApplyEnvOverrides(&lc)
	return observability.InitLogger("structdump", lc)
}

// parseEMsg accepts a decimal id, a 0x-prefixed hex id, or a symbolic name.
func parseEMsg(raw string) (enums.EMsg, error) {
	raw = strings.TrimSpace(raw)
	if v, err := strconv.ParseUint(raw, 0, 32); err == nil {
		return enums.EMsg(v), nil
	}
	for _, id := range protocol.Default().IDs() {
		if strings.EqualFold(id.String(), raw) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown message type %q", raw)
}

func readPayload(args []string, stdin io.Reader) (string, error) {
	switch {
	case len(args) > 1:
		return "", fmt.Errorf("expected one payload argument, got %d", len(args))
	case len(args) == 1 && args[0] != "-":
		return args[0], nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

func decodePayload(encoding, raw string) ([]byte, error) {
	switch encoding {
	case config.InputBase64:
		b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("decode base64 payload: %w", err)
		}
		return b, nil
	default:
		clean := strings.Map(func(r rune) rune {
			switch r {
			case ' ', '\n', '\r', '\t', ':':
				return -1
			}
			return r
		}, raw)
		clean = strings.TrimPrefix(strings.TrimPrefix(clean, "0x"), "0X")
		b, err := hex.DecodeString(clean)
		if err != nil {
			return nil, fmt.Errorf("decode hex payload: %w", err)
		}
		return b, nil
	}
}
