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
	"strings"

	"github.com/Gurux/gxcommon-go"
)

// OpenMode determines the access mode requested when a connection is opened.
type OpenMode int

const (
	// OpenModeRead opens the connection for reading.
	OpenModeRead OpenMode = 1
	// OpenModeWrite opens the connection for writing.
	OpenModeWrite OpenMode = 2
	// OpenModeReadWrite opens the connection for reading and writing.
	OpenModeReadWrite OpenMode = 3
)

// OpenModeParse converts the given string into an OpenMode value.
//
// It returns the corresponding OpenMode constant if the string matches
// a known mode name, or an error if the input is invalid.
func OpenModeParse(value string) (OpenMode, error) {
	var ret OpenMode
	var err error
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "READ":
		ret = OpenModeRead
	case "WRITE":
		ret = OpenModeWrite
	case "READ_WRITE", "READWRITE":
		ret = OpenModeReadWrite
	default:
		err = fmt.Errorf("%w: %q", gxcommon.ErrUnknownEnum, value)
	}
	return ret, err
}

// Valid reports whether m is one of the defined modes.
func (m OpenMode) Valid() bool {
	return m >= OpenModeRead && m <= OpenModeReadWrite
}

// CanRead reports whether the mode allows reading.
func (m OpenMode) CanRead() bool {
	return m == OpenModeRead || m == OpenModeReadWrite
}

// CanWrite reports whether the mode allows writing.
func (m OpenMode) CanWrite() bool {
	return m == OpenModeWrite || m == OpenModeReadWrite
}

// String returns the canonical name of the open mode.
// It satisfies fmt.Stringer.
func (m OpenMode) String() string {
	var ret string
	switch m {
	case OpenModeRead:
		ret = "READ"
	case OpenModeWrite:
		ret = "WRITE"
	case OpenModeReadWrite:
		ret = "READ_WRITE"
	default:
		ret = fmt.Sprintf("OpenMode(%d)", int(m))
	}
	return ret
}
