package gxsocket

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
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/Gurux/gxgcf-go"
)

// GXNetTransport binds Transport to operating system TCP sockets.
// It is safe for concurrent use.
type GXNetTransport struct {
	cfg gxgcf.SocketConfig

	mu    sync.Mutex
	next  Handle
	conns map[Handle]*netConn
}

type netConn struct {
	conn     net.Conn
	timeouts bool
}

// NewGXNetTransport creates a transport using cfg.
func NewGXNetTransport(cfg gxgcf.SocketConfig) *GXNetTransport {
	return &GXNetTransport{cfg: cfg, conns: make(map[Handle]*netConn)}
}

// Open resolves host and connects to it.
func (t *GXNetTransport) Open(host string, port int, timeouts bool) (Handle, error) {
	network := "tcp4"
	if t.cfg.UseIPv6 {
		network = "tcp6"
	}
	d := net.Dialer{Timeout: t.cfg.ConnectTimeout}
	c, err := d.Dial(network, net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return 0, fmt.Errorf("%w: host can't be resolved: %w", gxgcf.ErrNativeIO, err)
		}
		return 0, fmt.Errorf("%w: host is not reachable: %w", gxgcf.ErrNativeIO, err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.conns[t.next] = &netConn{conn: c, timeouts: timeouts}
	return t.next, nil
}

func (t *GXNetTransport) get(h Handle) (*netConn, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	nc, ok := t.conns[h]
	if !ok {
		return nil, fmt.Errorf("%w: bad socket handle %d", gxgcf.ErrNativeIO, h)
	}
	return nc, nil
}

func (t *GXNetTransport) deadline(nc *netConn) {
	if nc.timeouts && t.cfg.IOTimeout > 0 {
		_ = nc.conn.SetDeadline(time.Now().Add(t.cfg.IOTimeout))
	}
}

// ReadByte reads one byte or returns EOF.
func (t *GXNetTransport) ReadByte(h Handle) (int, error) {
	var b [1]byte
	n, err := t.Read(h, b[:], 0, 1)
	if err != nil || n == EOF {
		return n, err
	}
	return int(b[0]), nil
}

// Read performs one read into b[off:off+n].
func (t *GXNetTransport) Read(h Handle, b []byte, off, n int) (int, error) {
	nc, err := t.get(h)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	t.deadline(nc)
	k, err := nc.conn.Read(b[off : off+n])
	if k > 0 {
		// A pending error is reported again by the next read.
		return k, nil
	}
	if errors.Is(err, io.EOF) {
		return EOF, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: can't read from socket: %w", gxgcf.ErrNativeIO, err)
	}
	return 0, nil
}

// WriteByte writes one byte.
func (t *GXNetTransport) WriteByte(h Handle, b byte) (int, error) {
	return t.Write(h, []byte{b}, 0, 1)
}

// Write performs one write from b[off:off+n].
func (t *GXNetTransport) Write(h Handle, b []byte, off, n int) (int, error) {
	nc, err := t.get(h)
	if err != nil {
		return 0, err
	}
	t.deadline(nc)
	k, err := nc.conn.Write(b[off : off+n])
	if err != nil {
		return k, fmt.Errorf("%w: can't write to the socket: %w", gxgcf.ErrNativeIO, err)
	}
	return k, nil
}

// Close releases the handle.
func (t *GXNetTransport) Close(h Handle) error {
	t.mu.Lock()
	nc, ok := t.conns[h]
	delete(t.conns, h)
	t.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: bad socket handle %d", gxgcf.ErrNativeIO, h)
	}
	if err := nc.conn.Close(); err != nil {
		return fmt.Errorf("%w: %w", gxgcf.ErrNativeIO, err)
	}
	return nil
}
