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
	"unicode/utf8"
)

// GXDataInputStream reads big-endian primitive values from an input stream.
// Unlike the stream it wraps, every read here waits until the value is
// complete, aggregating partial reads.
type GXDataInputStream struct {
	in  IGXInputStream
	buf [8]byte
}

// NewGXDataInputStream wraps in.
func NewGXDataInputStream(in IGXInputStream) *GXDataInputStream {
	return &GXDataInputStream{in: in}
}

// Read implements io.Reader and forwards a single read to the stream.
func (d *GXDataInputStream) Read(b []byte) (int, error) {
	return d.in.Read(b)
}

// ReadByte implements io.ByteReader.
func (d *GXDataInputStream) ReadByte() (byte, error) {
	return d.in.ReadByte()
}

// ReadFully fills b. It returns io.EOF if nothing was read and
// io.ErrUnexpectedEOF if the stream ended part way.
func (d *GXDataInputStream) ReadFully(b []byte) error {
	_, err := io.ReadFull(d.in, b)
	return err
}

// ReadBoolean reads one byte and reports whether it is non-zero.
func (d *GXDataInputStream) ReadBoolean() (bool, error) {
	v, err := d.ReadUint8()
	return v != 0, err
}

// ReadInt8 reads a signed byte.
func (d *GXDataInputStream) ReadInt8() (int8, error) {
	v, err := d.ReadUint8()
	return int8(v), err
}

// ReadUint8 reads an unsigned byte.
func (d *GXDataInputStream) ReadUint8() (uint8, error) {
	if err := d.ReadFully(d.buf[:1]); err != nil {
		return 0, err
	}
	return d.buf[0], nil
}

// ReadInt16 reads a big-endian int16.
func (d *GXDataInputStream) ReadInt16() (int16, error) {
	v, err := d.ReadUint16()
	return int16(v), err
}

// ReadUint16 reads a big-endian uint16.
func (d *GXDataInputStream) ReadUint16() (uint16, error) {
	if err := d.ReadFully(d.buf[:2]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(d.buf[:2]), nil
}

// ReadInt32 reads a big-endian int32.
func (d *GXDataInputStream) ReadInt32() (int32, error) {
	if err := d.ReadFully(d.buf[:4]); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(d.buf[:4])), nil
}

// ReadInt64 reads a big-endian int64.
func (d *GXDataInputStream) ReadInt64() (int64, error) {
	if err := d.ReadFully(d.buf[:8]); err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(d.buf[:8])), nil
}

// ReadUTF reads a string written by GXDataOutputStream.WriteUTF:
// a uint16 byte count followed by UTF-8 text.
func (d *GXDataInputStream) ReadUTF() (string, error) {
	n, err := d.ReadUint16()
	if err != nil {
		return "", err
	}
	b := make([]byte, n)
	if err := d.ReadFully(b); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: malformed UTF-8 string", ErrIllegalArgument)
	}
	return string(b), nil
}

// Close closes the wrapped stream.
func (d *GXDataInputStream) Close() error {
	return d.in.Close()
}
