package gxgcf

// --------------------------------------------------------------------------
//
//	Gurux Ltd
//
// Filename:        $HeadURL$
//
// Version:         $Revision$,
//
//	$Date$
//	$Author$
//
// # Copyright (c) Gurux Ltd
//
// ---------------------------------------------------------------------------
//
//	DESCRIPTION
//
// This file is a part of Gurux Device Framework.
//
// Gurux Device Framework is Open Source software; you can redistribute it
// and/or modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; version 2 of the License.
// Gurux Device Framework is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU General Public License for more details.
//
// More information of Gurux products: https://www.gurux.org
//
// This code is licensed under the GNU General Public License v2.
// Full text may be retrieved at http://www.gnu.org/licenses/gpl-2.0.txt
// ---------------------------------------------------------------------------

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Gurux/gxcommon-go"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// SocketConfig holds settings of the native socket transport.
type SocketConfig struct {
	// ConnectTimeout bounds host resolution and connect.
	ConnectTimeout time.Duration
	// IOTimeout bounds each read and write of connections opened with timeouts.
	IOTimeout time.Duration
	// UseIPv6 defines if IPv6 is used. Default is false (IPv4).
	UseIPv6 bool
}

// Config holds connector defaults.
type Config struct {
	TraceLevel gxcommon.TraceLevel
	Language   language.Tag
	LogLevel   zerolog.Level
	Mode       OpenMode
	Timeouts   bool
	Socket     SocketConfig
}

// config.toml key mapping.
type fileConfig struct {
	TraceLevel string `toml:"trace_level"`
	Language   string `toml:"language"`
	LogLevel   string `toml:"log_level"`
	Mode       string `toml:"mode"`
	Timeouts   bool   `toml:"timeouts"`
	Socket     struct {
		ConnectTimeoutMS int64 `toml:"connect_timeout_ms"`
		IOTimeoutMS      int64 `toml:"io_timeout_ms"`
		UseIPv6          bool  `toml:"use_ipv6"`
	} `toml:"socket"`
}

// DefaultConfig returns the settings used when no file overrides them.
func DefaultConfig() Config {
	return Config{
		Language: language.AmericanEnglish,
		LogLevel: zerolog.InfoLevel,
		Mode:     OpenModeReadWrite,
		Socket: SocketConfig{
			ConnectTimeout: 10 * time.Second,
			IOTimeout:      5 * time.Second,
		},
	}
}

// LoadConfig reads a TOML file and overlays it on DefaultConfig.
func LoadConfig(path string) (Config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	return fromFile(meta, raw)
}

// ParseConfig decodes TOML text and overlays it on DefaultConfig.
func ParseConfig(data string) (Config, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed: %w", err)
	}
	return fromFile(meta, raw)
}

func fromFile(meta toml.MetaData, raw fileConfig) (Config, error) {
	cfg := DefaultConfig()
	var err error
	if meta.IsDefined("trace_level") {
		if cfg.TraceLevel, err = gxcommon.TraceLevelParse(strings.TrimSpace(raw.TraceLevel)); err != nil {
			return Config{}, fmt.Errorf("config trace_level: %w", err)
		}
	}
	if meta.IsDefined("language") {
		if cfg.Language, err = language.Parse(strings.TrimSpace(raw.Language)); err != nil {
			return Config{}, fmt.Errorf("config language: %w", err)
		}
	}
	if meta.IsDefined("log_level") {
		if cfg.LogLevel, err = ParseLogLevel(raw.LogLevel); err != nil {
			return Config{}, fmt.Errorf("config log_level: %w", err)
		}
	}
	if meta.IsDefined("mode") {
		if cfg.Mode, err = OpenModeParse(raw.Mode); err != nil {
			return Config{}, fmt.Errorf("config mode: %w", err)
		}
	}
	if meta.IsDefined("timeouts") {
		cfg.Timeouts = raw.Timeouts
	}
	if meta.IsDefined("socket", "connect_timeout_ms") {
		cfg.Socket.ConnectTimeout = time.Duration(raw.Socket.ConnectTimeoutMS) * time.Millisecond
	}
	if meta.IsDefined("socket", "io_timeout_ms") {
		cfg.Socket.IOTimeout = time.Duration(raw.Socket.IOTimeoutMS) * time.Millisecond
	}
	if meta.IsDefined("socket", "use_ipv6") {
		cfg.Socket.UseIPv6 = raw.Socket.UseIPv6
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: config mode %d", ErrIllegalArgument, int(c.Mode))
	}
	if c.Socket.ConnectTimeout < 0 {
		return fmt.Errorf("%w: negative connect timeout", ErrIllegalArgument)
	}
	if c.Socket.IOTimeout < 0 {
		return fmt.Errorf("%w: negative I/O timeout", ErrIllegalArgument)
	}
	return nil
}
