// Package gxgcf provides a generic connection framework for Gurux components.
// A caller asks for a resource with a connection string; the framework parses
// the string, selects the protocol registered for its scheme and lets that
// protocol open the connection. Stream connections expose byte streams.
//
// Features
//
//   - Connection strings: scheme:[target][;key=value]* (see GXURL).
//   - Dispatch: schemes map to protocol factories in a GXRegistry.
//   - Streams: single byte and ranged reads and writes; partial results are
//     returned to the caller as reported by the transport.
//   - Data streams: big-endian primitive values and UTF strings.
//   - Configuration: TOML files (see LoadConfig).
//   - Logging: zerolog loggers for the connector and the protocols.
//
// # Construction
//
// Create a registry, register the protocols and create a connector.
//
// Example
//
//	r := gxgcf.NewGXRegistry()
//	gxsocket.Register(r, gxsocket.NewGXNetTransport(gxgcf.DefaultConfig().Socket))
//	c := gxgcf.NewGXConnector(r)
//
//	conn, err := c.Open("socket://127.0.0.1:4059", gxgcf.OpenModeReadWrite, true)
//	if err != nil {
//	    // handle connect error
//	}
//	defer conn.Close()
//
//	sc := conn.(gxgcf.IGXStreamConnection)
//	out, _ := sc.OpenOutputStream()
//	n, err := out.WriteRange(data, 0, len(data)) // n may be less than len(data)
//
// # Parameters
//
// Parameters follow the target as ";key=value" pairs. Parsing stops at the
// first pair without '=': "x:a;k1=v1;bad;k2=v2" yields only k1.
//
// # Errors
//
// Errors wrap the sentinel values of this package and are tested with
// errors.Is. Nothing is retried by the framework; OpenWithRetry lets the
// caller choose a backoff policy for transport failures.
//
// # Notes
//
// A connection is owned by one goroutine. Streams borrow the connection and
// fail with ErrConnectionClosed once it is closed.
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
