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

// Handle identifies an open native socket. A handle is owned by exactly one
// GXSocket and must not be used after the transport closed it.
type Handle int

// EOF is the sentinel a Transport returns from reads at end of stream.
const EOF = -1

// Transport is the native socket boundary.
//
// Implementations do not retry partial results: Read and Write return
// the count the underlying socket reported. Failures wrap gxgcf.ErrNativeIO.
type Transport interface {
	Open(host string, port int, timeouts bool) (Handle, error)
	ReadByte(h Handle) (int, error)
	Read(h Handle, b []byte, off, n int) (int, error)
	WriteByte(h Handle, b byte) (int, error)
	Write(h Handle, b []byte, off, n int) (int, error)
	Close(h Handle) error
}
