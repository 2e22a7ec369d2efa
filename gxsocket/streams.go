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
	"io"
	"sync/atomic"

	"github.com/Gurux/gxcommon-go"
	"github.com/Gurux/gxgcf-go"
)

// inputStream borrows the socket handle. It fails with
// gxgcf.ErrConnectionClosed once the stream or the socket is closed.
type inputStream struct {
	s      *GXSocket
	closed atomic.Bool
}

func (in *inputStream) handle() (Handle, error) {
	if in.closed.Load() {
		return 0, gxgcf.ErrConnectionClosed
	}
	return in.s.openHandle()
}

// ReadByte implements io.ByteReader.
func (in *inputStream) ReadByte() (byte, error) {
	h, err := in.handle()
	if err != nil {
		return 0, err
	}
	v, err := in.s.transport.ReadByte(h)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, io.EOF
	}
	in.s.bytesReceived.Add(1)
	in.s.tracef(true, gxcommon.TraceTypesReceived, "RX: %02X", byte(v))
	return byte(v), nil
}

// Read implements io.Reader.
func (in *inputStream) Read(b []byte) (int, error) {
	return in.ReadRange(b, 0, len(b))
}

// ReadRange performs a single transport read into b[off:off+n].
func (in *inputStream) ReadRange(b []byte, off, n int) (int, error) {
	if err := gxgcf.CheckRange(b, off, n); err != nil {
		return 0, err
	}
	h, err := in.handle()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	k, err := in.s.transport.Read(h, b, off, n)
	if err != nil {
		return 0, err
	}
	if k < 0 {
		return 0, io.EOF
	}
	in.s.bytesReceived.Add(uint64(k))
	in.s.traceData(gxcommon.TraceTypesReceived, "RX", b[off:off+k])
	return k, nil
}

// Close marks the stream closed. The connection stays open.
func (in *inputStream) Close() error {
	in.closed.Store(true)
	return nil
}

// outputStream borrows the socket handle. It fails with
// gxgcf.ErrConnectionClosed once the stream or the socket is closed.
type outputStream struct {
	s      *GXSocket
	closed atomic.Bool
}

func (out *outputStream) handle() (Handle, error) {
	if out.closed.Load() {
		return 0, gxgcf.ErrConnectionClosed
	}
	return out.s.openHandle()
}

// WriteByte implements io.ByteWriter.
func (out *outputStream) WriteByte(c byte) error {
	h, err := out.handle()
	if err != nil {
		return err
	}
	k, err := out.s.transport.WriteByte(h, c)
	if err != nil {
		return err
	}
	if k < 1 {
		return io.ErrShortWrite
	}
	out.s.bytesSent.Add(1)
	out.s.tracef(true, gxcommon.TraceTypesSent, "TX: %02X", c)
	return nil
}

// Write implements io.Writer. It makes a single transport write; a
// partial count is reported with io.ErrShortWrite.
func (out *outputStream) Write(b []byte) (int, error) {
	k, err := out.WriteRange(b, 0, len(b))
	if err == nil && k < len(b) {
		err = io.ErrShortWrite
	}
	return k, err
}

// WriteRange performs a single transport write from b[off:off+n] and
// returns the count the transport accepted.
func (out *outputStream) WriteRange(b []byte, off, n int) (int, error) {
	if err := gxgcf.CheckRange(b, off, n); err != nil {
		return 0, err
	}
	h, err := out.handle()
	if err != nil {
		return 0, err
	}
	k, err := out.s.transport.Write(h, b, off, n)
	if k < 0 {
		k = 0
	} else if k > n {
		k = n
	}
	out.s.bytesSent.Add(uint64(k))
	out.s.traceData(gxcommon.TraceTypesSent, "TX", b[off:off+k])
	return k, err
}

// Close marks the stream closed. The connection stays open.
func (out *outputStream) Close() error {
	out.closed.Store(true)
	return nil
}

func (s *GXSocket) traceData(traceType gxcommon.TraceTypes, prefix string, data []byte) {
	if len(data) == 0 || !s.tracing(true, traceType) {
		return
	}
	str, err := gxcommon.ToString(data)
	if err != nil {
		s.tracef(true, gxcommon.TraceTypesError, "%s failed: %v", prefix, err)
		return
	}
	s.tracef(true, traceType, "%s: %s", prefix, str)
}
