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
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/Gurux/gxcommon-go"
)

// GXDataOutputStream writes big-endian primitive values to an output stream.
// Each value is written completely; partial writes of the wrapped stream
// are continued until the value is out or the stream fails.
type GXDataOutputStream struct {
	out IGXOutputStream
	buf [8]byte
}

// NewGXDataOutputStream wraps out.
func NewGXDataOutputStream(out IGXOutputStream) *GXDataOutputStream {
	return &GXDataOutputStream{out: out}
}

// Write implements io.Writer and writes all of b.
func (d *GXDataOutputStream) Write(b []byte) (int, error) {
	return d.writeFull(b)
}

// WriteByte implements io.ByteWriter.
func (d *GXDataOutputStream) WriteByte(c byte) error {
	return d.out.WriteByte(c)
}

func (d *GXDataOutputStream) writeFull(b []byte) (int, error) {
	total := 0
	for total < len(b) {
		n, err := d.out.WriteRange(b, total, len(b)-total)
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, io.ErrShortWrite
		}
	}
	return total, nil
}

// WriteBoolean writes 1 for true and 0 for false.
func (d *GXDataOutputStream) WriteBoolean(v bool) error {
	if v {
		return d.WriteInt8(1)
	}
	return d.WriteInt8(0)
}

// WriteInt8 writes a single byte.
func (d *GXDataOutputStream) WriteInt8(v int8) error {
	d.buf[0] = byte(v)
	_, err := d.writeFull(d.buf[:1])
	return err
}

// WriteInt16 writes a big-endian int16.
func (d *GXDataOutputStream) WriteInt16(v int16) error {
	binary.BigEndian.PutUint16(d.buf[:2], uint16(v))
	_, err := d.writeFull(d.buf[:2])
	return err
}

// WriteInt32 writes a big-endian int32.
func (d *GXDataOutputStream) WriteInt32(v int32) error {
	binary.BigEndian.PutUint32(d.buf[:4], uint32(v))
	_, err := d.writeFull(d.buf[:4])
	return err
}

// WriteInt64 writes a big-endian int64.
func (d *GXDataOutputStream) WriteInt64(v int64) error {
	binary.BigEndian.PutUint64(d.buf[:8], uint64(v))
	_, err := d.writeFull(d.buf[:8])
	return err
}

// WriteUTF writes a uint16 byte count followed by the UTF-8 bytes of s.
func (d *GXDataOutputStream) WriteUTF(s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("%w: string of %d bytes is too long", ErrIllegalArgument, len(s))
	}
	b := make([]byte, 2+len(s))
	binary.BigEndian.PutUint16(b, uint16(len(s)))
	copy(b[2:], s)
	_, err := d.writeFull(b)
	return err
}

// WriteValue writes v using the Gurux big-endian value encoding.
func (d *GXDataOutputStream) WriteValue(v any) error {
	b, err := gxcommon.ToBytes(v, binary.BigEndian)
	if err != nil {
		return err
	}
	_, err = d.writeFull(b)
	return err
}

// Close closes the wrapped stream.
func (d *GXDataOutputStream) Close() error {
	return d.out.Close()
}
