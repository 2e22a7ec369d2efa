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
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// GXConnector opens connections from connection strings.
// It parses the string, resolves the scheme in its registry and lets the
// selected handler open the target.
type GXConnector struct {
	registry *GXRegistry
	log      zerolog.Logger
}

// ConnectorOption configures a GXConnector.
type ConnectorOption func(*GXConnector)

// WithLogger sets the logger used by the connector.
func WithLogger(l zerolog.Logger) ConnectorOption {
	return func(c *GXConnector) {
		c.log = l
	}
}

// NewGXConnector creates a connector that dispatches through registry.
func NewGXConnector(registry *GXRegistry, options ...ConnectorOption) *GXConnector {
	c := &GXConnector{registry: registry, log: zerolog.Nop()}
	for _, o := range options {
		o(c)
	}
	return c
}

// Registry returns the registry the connector dispatches through.
func (c *GXConnector) Registry() *GXRegistry {
	return c.registry
}

// Open creates a connection for name.
func (c *GXConnector) Open(name string, mode OpenMode, timeouts bool) (IGXConnection, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: open mode %d", ErrIllegalArgument, int(mode))
	}
	url, err := ParseURL(name)
	if err != nil {
		c.log.Debug().Err(err).Str("url", name).Msg("parse failed")
		return nil, err
	}
	p, err := c.registry.Resolve(url)
	if err != nil {
		c.log.Debug().Err(err).Str("scheme", url.Scheme()).Msg("resolve failed")
		return nil, err
	}
	conn, err := p.Open(url, mode, timeouts)
	if err != nil {
		c.log.Debug().Err(err).Str("url", name).Stringer("mode", mode).Msg("open failed")
		return nil, err
	}
	c.log.Debug().Str("url", name).Stringer("mode", mode).Bool("timeouts", timeouts).Msg("connection opened")
	return conn, nil
}

// OpenWithRetry calls Open until it succeeds, b gives up or ctx is done.
// Only native transport failures are retried.
func (c *GXConnector) OpenWithRetry(ctx context.Context, name string, mode OpenMode, timeouts bool, b backoff.BackOff) (IGXConnection, error) {
	var conn IGXConnection
	op := func() error {
		var err error
		conn, err = c.Open(name, mode, timeouts)
		if err != nil && !errors.Is(err, ErrNativeIO) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, next time.Duration) {
		c.log.Warn().Err(err).Str("url", name).Dur("retry_in", next).Msg("open failed, retrying")
	}
	if err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, err
	}
	return conn, nil
}

// OpenInputStream opens name for reading and returns its input stream.
// Closing the stream closes the connection.
func (c *GXConnector) OpenInputStream(name string) (IGXInputStream, error) {
	conn, err := c.Open(name, OpenModeRead, false)
	if err != nil {
		return nil, err
	}
	ic, ok := conn.(IGXInputConnection)
	if !ok {
		return nil, closeWith(conn, fmt.Errorf("%w: %s does not provide input streams", ErrIllegalArgument, name))
	}
	in, err := ic.OpenInputStream()
	if err != nil {
		return nil, closeWith(conn, err)
	}
	return &ownedInputStream{IGXInputStream: in, conn: conn}, nil
}

// OpenOutputStream opens name for writing and returns its output stream.
// Closing the stream closes the connection.
func (c *GXConnector) OpenOutputStream(name string) (IGXOutputStream, error) {
	conn, err := c.Open(name, OpenModeWrite, false)
	if err != nil {
		return nil, err
	}
	oc, ok := conn.(IGXOutputConnection)
	if !ok {
		return nil, closeWith(conn, fmt.Errorf("%w: %s does not provide output streams", ErrIllegalArgument, name))
	}
	out, err := oc.OpenOutputStream()
	if err != nil {
		return nil, closeWith(conn, err)
	}
	return &ownedOutputStream{IGXOutputStream: out, conn: conn}, nil
}

// OpenDataInputStream is OpenInputStream wrapped in a GXDataInputStream.
func (c *GXConnector) OpenDataInputStream(name string) (*GXDataInputStream, error) {
	in, err := c.OpenInputStream(name)
	if err != nil {
		return nil, err
	}
	return NewGXDataInputStream(in), nil
}

// OpenDataOutputStream is OpenOutputStream wrapped in a GXDataOutputStream.
func (c *GXConnector) OpenDataOutputStream(name string) (*GXDataOutputStream, error) {
	out, err := c.OpenOutputStream(name)
	if err != nil {
		return nil, err
	}
	return NewGXDataOutputStream(out), nil
}

func closeWith(conn IGXConnection, err error) error {
	return errors.Join(err, conn.Close())
}

type ownedInputStream struct {
	IGXInputStream
	conn IGXConnection
}

func (s *ownedInputStream) Close() error {
	return errors.Join(s.IGXInputStream.Close(), s.conn.Close())
}

type ownedOutputStream struct {
	IGXOutputStream
	conn IGXConnection
}

func (s *ownedOutputStream) Close() error {
	return errors.Join(s.IGXOutputStream.Close(), s.conn.Close())
}
