package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Gurux/gxcommon-go"
	"github.com/Gurux/gxgcf-go"
	"github.com/Gurux/gxgcf-go/gxsocket"
	"github.com/cenkalti/backoff/v4"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/text/language"
)

func CurrentLanguage() language.Tag {
	langEnv := os.Getenv("LANG")
	if langEnv == "" {
		return language.AmericanEnglish
	}
	langEnv = strings.Split(langEnv, ".")[0]
	tag, err := language.Parse(langEnv)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

func main() {
	app := &cli.App{
		Name:  "gxgcf-example",
		Usage: "Send a line to a socket:// connection string and print the reply",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "connection string, e.g. socket://127.0.0.1:4059", Required: true},
			&cli.StringFlag{Name: "message", Aliases: []string{"m"}, Usage: "message to send", Required: true},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "TOML config file"},
			&cli.StringFlag{Name: "trace", Aliases: []string{"t"}, Usage: "trace level"},
			&cli.StringFlag{Name: "lang", Usage: "language of trace messages"},
			&cli.Uint64Flag{Name: "retries", Value: 3, Usage: "connect retries"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := gxgcf.DefaultConfig()
	cfg.Language = CurrentLanguage()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = gxgcf.LoadConfig(path); err != nil {
			return err
		}
	}
	if t := c.String("trace"); t != "" {
		tl, err := gxcommon.TraceLevelParse(t)
		if err != nil {
			return err
		}
		cfg.TraceLevel = tl
	}
	if l := c.String("lang"); l != "" {
		tag, err := language.Parse(l)
		if err != nil {
			return fmt.Errorf("error parsing language: %w", err)
		}
		cfg.Language = tag
	}

	log := gxgcf.NewLogger(os.Stderr, cfg.LogLevel)
	registry := gxgcf.NewGXRegistry()
	err := gxsocket.Register(registry, gxsocket.NewGXNetTransport(cfg.Socket),
		gxsocket.WithLogger(log),
		gxsocket.WithLanguage(cfg.Language),
		gxsocket.WithTrace(cfg.TraceLevel, func(s *gxsocket.GXSocket, e gxcommon.TraceEventArgs) {
			fmt.Printf("Trace: %s\n", e.String())
		}),
		gxsocket.WithStateHandler(func(s *gxsocket.GXSocket, e gxcommon.MediaStateEventArgs) {
			fmt.Printf("Media state change : %s\n", e.State().String())
		}),
	)
	if err != nil {
		return err
	}
	connector := gxgcf.NewGXConnector(registry, gxgcf.WithLogger(log))

	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.Uint64("retries"))
	conn, err := connector.OpenWithRetry(c.Context, c.String("url"), cfg.Mode, cfg.Timeouts, b)
	if err != nil {
		return err
	}
	//Close the connection.
	defer func() {
		if err := conn.Close(); err != nil {
			log.Error().Err(err).Msg("close failed")
		}
	}()
	sc, ok := conn.(gxgcf.IGXStreamConnection)
	if !ok {
		return fmt.Errorf("%s is not a stream connection", c.String("url"))
	}
	return exchange(c.Context, sc, c.String("message")+"\n")
}

// exchange writes msg and prints one reply line.
func exchange(ctx context.Context, sc gxgcf.IGXStreamConnection, msg string) error {
	out, err := sc.OpenOutputStream()
	if err != nil {
		return err
	}
	defer out.Close()
	data := []byte(msg)
	// The stream does not retry partial writes.
	for sent := 0; sent < len(data); {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := out.WriteRange(data, sent, len(data)-sent)
		if err != nil {
			return err
		}
		sent += n
	}

	in, err := sc.OpenInputStream()
	if err != nil {
		return err
	}
	defer in.Close()
	reply, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	fmt.Printf("Reply: %s\n", strings.TrimRight(reply, "\n"))
	return nil
}
