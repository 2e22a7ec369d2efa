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
	"errors"

	"github.com/Gurux/gxcommon-go"
)

var (
	// ErrInvalidURL is returned when a connection string has no scheme delimiter.
	ErrInvalidURL = errors.New("gxgcf: invalid URL")
	// ErrUnsupportedScheme is returned when no protocol is registered for a scheme.
	ErrUnsupportedScheme = errors.New("gxgcf: unsupported scheme")
	// ErrSchemeRegistered is returned when a scheme already has a protocol.
	ErrSchemeRegistered = errors.New("gxgcf: scheme already registered")
	// ErrIllegalArgument is returned for arguments a protocol or stream cannot accept.
	ErrIllegalArgument = errors.New("gxgcf: illegal argument")
	// ErrIllegalState is returned when a protocol instance is opened twice.
	ErrIllegalState = errors.New("gxgcf: illegal state")
	// ErrNativeIO wraps failures reported by a native transport.
	ErrNativeIO = errors.New("gxgcf: native I/O failure")
	// ErrConnectionClosed is returned for I/O on a closed connection or stream.
	ErrConnectionClosed = gxcommon.ErrConnectionClosed
)
