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

	"github.com/Gurux/gxgcf-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	closed int
}

func (c *fakeConn) Close() error {
	c.closed++
	return nil
}

// fakeProtocol opens a fakeConn or returns err.
type fakeProtocol struct {
	err   error
	conn  *fakeConn
	opens int
}

func (p *fakeProtocol) Open(url *gxgcf.GXURL, mode gxgcf.OpenMode, timeouts bool) (gxgcf.IGXConnection, error) {
	p.opens++
	if p.err != nil {
		return nil, p.err
	}
	p.conn = &fakeConn{}
	return p.conn, nil
}

func TestRegistryResolve(t *testing.T) {
	r := gxgcf.NewGXRegistry()
	created := 0
	require.NoError(t, r.Register("fake", func() gxgcf.IGXProtocol {
		created++
		return &fakeProtocol{}
	}))

	u, err := gxgcf.ParseURL("fake:target")
	require.NoError(t, err)
	p1, err := r.Resolve(u)
	require.NoError(t, err)
	p2, err := r.Resolve(u)
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.NotSame(t, p1, p2)

	u, err = gxgcf.ParseURL("http://example.com")
	require.NoError(t, err)
	_, err = r.Resolve(u)
	assert.ErrorIs(t, err, gxgcf.ErrUnsupportedScheme)
}

func TestRegistryRegister(t *testing.T) {
	r := gxgcf.NewGXRegistry()
	factory := func() gxgcf.IGXProtocol { return &fakeProtocol{} }

	assert.ErrorIs(t, r.Register("", factory), gxgcf.ErrIllegalArgument)
	assert.ErrorIs(t, r.Register("fake", nil), gxgcf.ErrIllegalArgument)
	require.NoError(t, r.Register("fake", factory))
	assert.ErrorIs(t, r.Register("fake", factory), gxgcf.ErrSchemeRegistered)
	require.NoError(t, r.Register("another", factory))
	assert.Equal(t, []string{"another", "fake"}, r.Schemes())

	assert.True(t, r.Unregister("fake"))
	assert.False(t, r.Unregister("fake"))
	assert.Equal(t, []string{"another"}, r.Schemes())

	u, err := gxgcf.ParseURL("fake:x")
	require.NoError(t, err)
	_, err = r.Resolve(u)
	assert.ErrorIs(t, err, gxgcf.ErrUnsupportedScheme)
	require.NoError(t, r.Register("fake", factory))
}
