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
)

// GXURL is a parsed connection string of the general form
//
//	{scheme}:[{target}][{params}]
//
// where {scheme} names a protocol, {target} is a scheme specific address
// and {params} is a series of ";key=value" pairs. Only the scheme is
// validated here; the target grammar belongs to the protocol handler.
type GXURL struct {
	name   string
	scheme string
	target string
	params string
}

// ParseURL splits name into scheme, target and params. The scheme must be
// non-empty.
func ParseURL(name string) (*GXURL, error) {
	schemeEnd := strings.IndexByte(name, ':')
	if schemeEnd <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, name)
	}
	u := &GXURL{name: name, scheme: name[:schemeEnd]}
	rest := name[schemeEnd+1:]
	if i := strings.IndexByte(rest, ';'); i == -1 {
		u.target = rest
	} else {
		u.target = rest[:i]
		u.params = rest[i:]
	}
	return u, nil
}

// Name returns the connection string the URL was parsed from.
func (u *GXURL) Name() string {
	return u.name
}

// Scheme returns the text before the first ':'.
func (u *GXURL) Scheme() string {
	return u.scheme
}

// Target returns the scheme specific address.
func (u *GXURL) Target() string {
	return u.target
}

// Params returns the parameter part including the leading ';',
// or an empty string when the URL has no parameters.
func (u *GXURL) Params() string {
	return u.params
}

// HasParams reports whether the URL carries a parameter part.
func (u *GXURL) HasParams() bool {
	return u.params != ""
}

// ParamsMap parses the URL parameters. The map is built on every call.
func (u *GXURL) ParamsMap() map[string]string {
	return ParseParams(u.params)
}

// Param returns the value of a single parameter.
func (u *GXURL) Param(key string) (string, bool) {
	v, ok := u.ParamsMap()[key]
	return v, ok
}

// String implements fmt.Stringer.
func (u *GXURL) String() string {
	return u.name
}

// ParseParams converts a ";k1=v1;k2=v2" parameter string into a map.
//
// Text before the first ';' is ignored and a repeated key keeps the last
// value. Parsing stops at the first segment without '=': that segment and
// every segment after it are dropped, even well formed ones.
func ParseParams(params string) map[string]string {
	m := make(map[string]string)
	start := strings.IndexByte(params, ';')
	for start != -1 {
		segment := params[start+1:]
		next := strings.IndexByte(segment, ';')
		if next != -1 {
			segment = segment[:next]
		}
		eq := strings.IndexByte(segment, '=')
		if eq == -1 {
			break
		}
		m[segment[:eq]] = segment[eq+1:]
		if next == -1 {
			break
		}
		start += next + 1
	}
	return m
}
