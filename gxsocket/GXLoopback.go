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
	"bytes"
	"fmt"
	"sync"

	"github.com/Gurux/gxgcf-go"
)

// GXLoopback is an in-memory Transport where every handle echoes back what
// was written to it. Reads from an empty handle return EOF.
//
// A positive chunk limits the bytes moved by a single read or write so that
// callers see partial results.
type GXLoopback struct {
	mu      sync.Mutex
	chunk   int
	next    Handle
	buffers map[Handle]*bytes.Buffer
}

// NewGXLoopback creates a loopback transport. A chunk of zero or less
// means no limit.
func NewGXLoopback(chunk int) *GXLoopback {
	return &GXLoopback{chunk: chunk, buffers: make(map[Handle]*bytes.Buffer)}
}

// Open returns a new handle. An empty host cannot be resolved and a port
// outside 0-65535 is not reachable.
func (l *GXLoopback) Open(host string, port int, timeouts bool) (Handle, error) {
	if host == "" {
		return 0, fmt.Errorf("%w: host can't be resolved", gxgcf.ErrNativeIO)
	}
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("%w: host is not reachable", gxgcf.ErrNativeIO)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next++
	l.buffers[l.next] = new(bytes.Buffer)
	return l.next, nil
}

// OpenHandles returns the number of handles not yet closed.
func (l *GXLoopback) OpenHandles() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buffers)
}

func (l *GXLoopback) limit(n int) int {
	if l.chunk > 0 && n > l.chunk {
		return l.chunk
	}
	return n
}

func (l *GXLoopback) buffer(h Handle) (*bytes.Buffer, error) {
	buf, ok := l.buffers[h]
	if !ok {
		return nil, fmt.Errorf("%w: bad socket handle %d", gxgcf.ErrNativeIO, h)
	}
	return buf, nil
}

// ReadByte reads one byte or returns EOF.
func (l *GXLoopback) ReadByte(h Handle) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	buf, err := l.buffer(h)
	if err != nil {
		return 0, err
	}
	c, err := buf.ReadByte()
	if err != nil {
		return EOF, nil
	}
	return int(c), nil
}

// Read moves up to n buffered bytes into b[off:off+n].
func (l *GXLoopback) Read(h Handle, b []byte, off, n int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	buf, err := l.buffer(h)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	if buf.Len() == 0 {
		return EOF, nil
	}
	k, _ := buf.Read(b[off : off+l.limit(n)])
	return k, nil
}

// WriteByte buffers one byte.
func (l *GXLoopback) WriteByte(h Handle, c byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	buf, err := l.buffer(h)
	if err != nil {
		return 0, err
	}
	buf.WriteByte(c)
	return 1, nil
}

// Write buffers up to n bytes from b[off:off+n].
func (l *GXLoopback) Write(h Handle, b []byte, off, n int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	buf, err := l.buffer(h)
	if err != nil {
		return 0, err
	}
	k, _ := buf.Write(b[off : off+l.limit(n)])
	return k, nil
}

// Close releases the handle.
func (l *GXLoopback) Close(h Handle) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.buffer(h); err != nil {
		return err
	}
	delete(l.buffers, h)
	return nil
}
