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
	"testing"

	"github.com/Gurux/gxcommon-go"
	"github.com/Gurux/gxgcf-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenModeParse(t *testing.T) {
	tests := map[string]gxgcf.OpenMode{
		"READ":       gxgcf.OpenModeRead,
		"write":      gxgcf.OpenModeWrite,
		"Read_Write": gxgcf.OpenModeReadWrite,
		"READWRITE":  gxgcf.OpenModeReadWrite,
	}
	for in, want := range tests {
		got, err := gxgcf.OpenModeParse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := gxgcf.OpenModeParse("append")
	assert.ErrorIs(t, err, gxcommon.ErrUnknownEnum)
}

func TestOpenModeString(t *testing.T) {
	for _, m := range []gxgcf.OpenMode{gxgcf.OpenModeRead, gxgcf.OpenModeWrite, gxgcf.OpenModeReadWrite} {
		assert.True(t, m.Valid())
		parsed, err := gxgcf.OpenModeParse(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	assert.Equal(t, "OpenMode(7)", gxgcf.OpenMode(7).String())
	assert.False(t, gxgcf.OpenMode(0).Valid())
	assert.False(t, gxgcf.OpenMode(4).Valid())
}

func TestOpenModeAccess(t *testing.T) {
	assert.True(t, gxgcf.OpenModeRead.CanRead())
	assert.False(t, gxgcf.OpenModeRead.CanWrite())
	assert.False(t, gxgcf.OpenModeWrite.CanRead())
	assert.True(t, gxgcf.OpenModeWrite.CanWrite())
	assert.True(t, gxgcf.OpenModeReadWrite.CanRead())
	assert.True(t, gxgcf.OpenModeReadWrite.CanWrite())
}
