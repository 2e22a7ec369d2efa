package gxgcf_test

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
	"strings"
	"testing"

	"github.com/Gurux/gxgcf-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDataPair(t *testing.T, chunk int) (*gxgcf.GXDataInputStream, *gxgcf.GXDataOutputStream) {
	t.Helper()
	c, _ := newLoopbackConnector(t, chunk)
	conn, err := c.Open("socket://localhost:4059", gxgcf.OpenModeReadWrite, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	sc := conn.(gxgcf.IGXStreamConnection)
	in, err := sc.OpenDataInputStream()
	require.NoError(t, err)
	out, err := sc.OpenDataOutputStream()
	require.NoError(t, err)
	return in, out
}

func TestDataStreamsRoundTrip(t *testing.T) {
	in, out := openDataPair(t, 1)

	require.NoError(t, out.WriteBoolean(true))
	require.NoError(t, out.WriteBoolean(false))
	require.NoError(t, out.WriteInt8(-2))
	require.NoError(t, out.WriteInt16(-300))
	require.NoError(t, out.WriteInt32(0x01020304))
	require.NoError(t, out.WriteInt64(-1))
	require.NoError(t, out.WriteUTF("päivää"))
	require.NoError(t, out.WriteByte(0x7E))
	n, err := out.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	b, err := in.ReadBoolean()
	require.NoError(t, err)
	assert.True(t, b)
	b, err = in.ReadBoolean()
	require.NoError(t, err)
	assert.False(t, b)
	i8, err := in.ReadInt8()
	require.NoError(t, err)
	assert.Equal(t, int8(-2), i8)
	i16, err := in.ReadInt16()
	require.NoError(t, err)
	assert.Equal(t, int16(-300), i16)
	i32, err := in.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(0x01020304), i32)
	i64, err := in.ReadInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), i64)
	s, err := in.ReadUTF()
	require.NoError(t, err)
	assert.Equal(t, "päivää", s)
	c, err := in.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x7E), c)
	rest := make([]byte, 3)
	require.NoError(t, in.ReadFully(rest))
	assert.Equal(t, []byte{1, 2, 3}, rest)

	_, err = in.ReadUint8()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDataStreamWireFormat(t *testing.T) {
	in, out := openDataPair(t, 0)
	require.NoError(t, out.WriteInt16(0x0102))
	require.NoError(t, out.WriteUTF("ab"))
	require.NoError(t, out.WriteValue([]byte{0xAA, 0xBB}))

	got := make([]byte, 8)
	require.NoError(t, in.ReadFully(got))
	assert.Equal(t, []byte{0x01, 0x02, 0x00, 0x02, 'a', 'b', 0xAA, 0xBB}, got)
}

func TestDataStreamShortInput(t *testing.T) {
	in, out := openDataPair(t, 0)
	require.NoError(t, out.WriteInt16(7))
	_, err := in.ReadInt32()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	require.NoError(t, out.WriteInt16(5))
	require.NoError(t, out.WriteInt8('x'))
	_, err = in.ReadUTF()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	require.NoError(t, out.WriteInt16(1))
	require.NoError(t, out.WriteInt8(-1))
	_, err = in.ReadUTF()
	assert.ErrorIs(t, err, gxgcf.ErrIllegalArgument)
}

func TestDataStreamUTFTooLong(t *testing.T) {
	_, out := openDataPair(t, 0)
	err := out.WriteUTF(strings.Repeat("x", 1<<16))
	assert.ErrorIs(t, err, gxgcf.ErrIllegalArgument)
}

func TestCheckRange(t *testing.T) {
	b := make([]byte, 4)
	assert.NoError(t, gxgcf.CheckRange(b, 0, 4))
	assert.NoError(t, gxgcf.CheckRange(b, 4, 0))
	assert.NoError(t, gxgcf.CheckRange(b, 1, 2))
	assert.ErrorIs(t, gxgcf.CheckRange(b, -1, 1), gxgcf.ErrIllegalArgument)
	assert.ErrorIs(t, gxgcf.CheckRange(b, 0, -1), gxgcf.ErrIllegalArgument)
	assert.ErrorIs(t, gxgcf.CheckRange(b, 3, 2), gxgcf.ErrIllegalArgument)
	assert.ErrorIs(t, gxgcf.CheckRange(b, 5, 0), gxgcf.ErrIllegalArgument)
}
