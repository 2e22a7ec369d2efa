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
	"io"
)

// IGXProtocol opens connections for one scheme.
//
// Open validates the URL target against the scheme grammar and establishes
// the connection. Handlers may ignore modes they do not support. Whether
// timeouts is honored is handler specific.
type IGXProtocol interface {
	Open(url *GXURL, mode OpenMode, timeouts bool) (IGXConnection, error)
}

// ProtocolFactory returns a new, unopened protocol handler.
type ProtocolFactory func() IGXProtocol

// IGXConnection is the most basic connection: it can only be closed.
type IGXConnection interface {
	Close() error
}

// IGXInputConnection is a connection that provides input streams.
type IGXInputConnection interface {
	IGXConnection
	OpenInputStream() (IGXInputStream, error)
	OpenDataInputStream() (*GXDataInputStream, error)
}

// IGXOutputConnection is a connection that provides output streams.
type IGXOutputConnection interface {
	IGXConnection
	OpenOutputStream() (IGXOutputStream, error)
	OpenDataOutputStream() (*GXDataOutputStream, error)
}

// IGXStreamConnection provides both input and output streams.
type IGXStreamConnection interface {
	IGXInputConnection
	IGXOutputConnection
}

// IGXInputStream is a byte input stream borrowed from a connection.
//
// ReadRange reads at most n bytes into b[off:off+n]. A short count is not
// an error. End of stream is reported as io.EOF.
type IGXInputStream interface {
	io.Reader
	io.ByteReader
	io.Closer
	ReadRange(b []byte, off, n int) (int, error)
}

// IGXOutputStream is a byte output stream borrowed from a connection.
//
// WriteRange writes at most n bytes from b[off:off+n] and returns the count
// the transport accepted. A partial write is not retried.
type IGXOutputStream interface {
	io.Writer
	io.ByteWriter
	io.Closer
	WriteRange(b []byte, off, n int) (int, error)
}

// CheckRange validates an offset/length pair against b.
func CheckRange(b []byte, off, n int) error {
	if off < 0 || n < 0 || off > len(b) || n > len(b)-off {
		return fmt.Errorf("%w: range [%d:%d+%d] outside buffer of %d bytes", ErrIllegalArgument, off, off, n, len(b))
	}
	return nil
}
