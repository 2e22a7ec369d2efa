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

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Gurux/gxcommon-go"
	"github.com/Gurux/gxgcf-go"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Scheme is the connection string scheme served by GXSocket.
const Scheme = "socket"

var (
	// ErrMalformedURL is returned when the target is not "//host:port".
	ErrMalformedURL = fmt.Errorf("%w: malformed URL", gxgcf.ErrIllegalArgument)
	// ErrBadPort is returned when the port is not a decimal number.
	ErrBadPort = fmt.Errorf("%w: malformed URL: bad port", gxgcf.ErrIllegalArgument)
)

type socketState int

const (
	stateUnopened socketState = iota
	stateOpened
	stateClosed
)

// StateHandler is called when the socket state changes.
type StateHandler func(s *GXSocket, e gxcommon.MediaStateEventArgs)

// TraceHandler is called for trace messages allowed by the trace level.
type TraceHandler func(s *GXSocket, e gxcommon.TraceEventArgs)

// GXSocket is the protocol handler for "socket://host:port" and the stream
// connection it opens. An instance opens once; after Close it is done.
//
// Handlers are called with the socket lock held and must not call back
// into the socket.
type GXSocket struct {
	transport Transport

	mu       sync.RWMutex
	state    socketState
	host     string
	port     int
	handle   Handle
	mode     gxgcf.OpenMode
	timeouts bool

	bytesSent     atomic.Uint64
	bytesReceived atomic.Uint64

	// The trace level specifies which types of trace messages are emitted.
	traceLevel gxcommon.TraceLevel
	//Called when the socket state is changed.
	onState StateHandler
	//Called when the socket is tracing.
	onTrace TraceHandler

	log zerolog.Logger
	// Printer for localized messages.
	p *message.Printer
}

// Option configures a GXSocket.
type Option func(*GXSocket)

// WithLogger sets the logger of the socket.
func WithLogger(l zerolog.Logger) Option {
	return func(s *GXSocket) {
		s.log = l
	}
}

// WithTrace sets the trace level and trace handler.
func WithTrace(level gxcommon.TraceLevel, h TraceHandler) Option {
	return func(s *GXSocket) {
		s.traceLevel = level
		s.onTrace = h
	}
}

// WithStateHandler sets the state change handler.
func WithStateHandler(h StateHandler) Option {
	return func(s *GXSocket) {
		s.onState = h
	}
}

// WithLanguage selects the language of trace messages.
func WithLanguage(tag language.Tag) Option {
	return func(s *GXSocket) {
		s.p = message.NewPrinter(tag)
	}
}

// NewGXSocket creates an unopened socket using transport t.
func NewGXSocket(t Transport, options ...Option) *GXSocket {
	s := &GXSocket{transport: t, log: zerolog.Nop()}
	s.Localize(language.AmericanEnglish)
	for _, o := range options {
		o(s)
	}
	return s
}

// Factory returns a protocol factory creating sockets on t.
func Factory(t Transport, options ...Option) gxgcf.ProtocolFactory {
	return func() gxgcf.IGXProtocol {
		return NewGXSocket(t, options...)
	}
}

// Register installs the socket scheme in r.
func Register(r *gxgcf.GXRegistry, t Transport, options ...Option) error {
	return r.Register(Scheme, Factory(t, options...))
}

// ParseTarget splits a "//host:port" target. The port is not range checked.
func ParseTarget(target string) (string, int, error) {
	portStart := strings.IndexByte(target, ':')
	if !strings.HasPrefix(target, "//") || portStart == -1 {
		return "", 0, fmt.Errorf("%w: %q", ErrMalformedURL, target)
	}
	host := target[2:portStart]
	port, err := strconv.ParseInt(target[portStart+1:], 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", ErrBadPort, target)
	}
	return host, int(port), nil
}

// Open implements gxgcf.IGXProtocol.
func (s *GXSocket) Open(url *gxgcf.GXURL, mode gxgcf.OpenMode, timeouts bool) (gxgcf.IGXConnection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateUnopened {
		return nil, fmt.Errorf("%w: socket is already opened", gxgcf.ErrIllegalState)
	}
	host, port, err := ParseTarget(url.Target())
	if err != nil {
		return nil, err
	}
	s.statef(false, gxcommon.MediaStateOpening)
	s.trace(false, gxcommon.TraceTypesInfo, s.p.Sprintf("msg.connecting_to", host, port))
	h, err := s.transport.Open(host, port, timeouts)
	if err != nil {
		s.trace(false, gxcommon.TraceTypesError, s.p.Sprintf("msg.connect_failed", host, port, err))
		s.log.Debug().Err(err).Str("host", host).Int("port", port).Msg("socket open failed")
		return nil, err
	}
	opened := false
	defer func() {
		// The handle must not leak if a handler panics.
		if !opened {
			_ = s.transport.Close(h)
		}
	}()
	s.host, s.port, s.handle = host, port, h
	s.mode, s.timeouts = mode, timeouts
	s.trace(false, gxcommon.TraceTypesInfo, s.p.Sprintf("msg.connected_to", host, port))
	s.statef(false, gxcommon.MediaStateOpen)
	s.state = stateOpened
	opened = true
	s.log.Debug().Str("host", host).Int("port", port).Int("handle", int(h)).Msg("socket opened")
	return s, nil
}

// Close implements gxgcf.IGXConnection. Closing a socket that is not open
// returns gxgcf.ErrConnectionClosed without touching the transport.
func (s *GXSocket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateOpened {
		return fmt.Errorf("%w: socket is not open", gxgcf.ErrConnectionClosed)
	}
	s.trace(false, gxcommon.TraceTypesInfo, s.p.Sprintf("msg.closing_connection", s.host, s.port))
	s.statef(false, gxcommon.MediaStateClosing)
	s.state = stateClosed
	err := s.transport.Close(s.handle)
	s.trace(false, gxcommon.TraceTypesInfo, s.p.Sprintf("msg.connection_closed", s.host, s.port))
	s.statef(false, gxcommon.MediaStateClosed)
	s.log.Debug().Err(err).Str("host", s.host).Int("port", s.port).Msg("socket closed")
	return err
}

// openHandle returns the handle while the socket is open.
func (s *GXSocket) openHandle() (Handle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != stateOpened {
		return 0, gxgcf.ErrConnectionClosed
	}
	return s.handle, nil
}

// OpenInputStream implements gxgcf.IGXInputConnection.
func (s *GXSocket) OpenInputStream() (gxgcf.IGXInputStream, error) {
	if _, err := s.openHandle(); err != nil {
		return nil, err
	}
	return &inputStream{s: s}, nil
}

// OpenDataInputStream implements gxgcf.IGXInputConnection.
func (s *GXSocket) OpenDataInputStream() (*gxgcf.GXDataInputStream, error) {
	in, err := s.OpenInputStream()
	if err != nil {
		return nil, err
	}
	return gxgcf.NewGXDataInputStream(in), nil
}

// OpenOutputStream implements gxgcf.IGXOutputConnection.
func (s *GXSocket) OpenOutputStream() (gxgcf.IGXOutputStream, error) {
	if _, err := s.openHandle(); err != nil {
		return nil, err
	}
	return &outputStream{s: s}, nil
}

// OpenDataOutputStream implements gxgcf.IGXOutputConnection.
func (s *GXSocket) OpenDataOutputStream() (*gxgcf.GXDataOutputStream, error) {
	out, err := s.OpenOutputStream()
	if err != nil {
		return nil, err
	}
	return gxgcf.NewGXDataOutputStream(out), nil
}

// IsOpen reports whether the socket is open.
func (s *GXSocket) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == stateOpened
}

// Host returns the host name parsed from the target.
func (s *GXSocket) Host() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.host
}

// Port returns the port parsed from the target.
func (s *GXSocket) Port() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.port
}

// Mode returns the mode the socket was opened with.
func (s *GXSocket) Mode() gxgcf.OpenMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// String returns "host:port".
func (s *GXSocket) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("%s:%d", s.host, s.port)
}

// BytesSent returns the number of bytes written to the transport.
func (s *GXSocket) BytesSent() uint64 {
	return s.bytesSent.Load()
}

// BytesReceived returns the number of bytes read from the transport.
func (s *GXSocket) BytesReceived() uint64 {
	return s.bytesReceived.Load()
}

// ResetByteCounters zeroes the byte counters.
func (s *GXSocket) ResetByteCounters() {
	s.bytesSent.Store(0)
	s.bytesReceived.Store(0)
}

// GetTrace returns the trace level.
func (s *GXSocket) GetTrace() gxcommon.TraceLevel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.traceLevel
}

// SetTrace sets the trace level.
func (s *GXSocket) SetTrace(traceLevel gxcommon.TraceLevel) error {
	s.mu.Lock()
	s.traceLevel = traceLevel
	s.mu.Unlock()
	return nil
}

// SetOnTrace sets the trace handler.
func (s *GXSocket) SetOnTrace(value TraceHandler) {
	s.mu.Lock()
	s.onTrace = value
	s.mu.Unlock()
}

// SetOnMediaStateChange sets the state change handler.
func (s *GXSocket) SetOnMediaStateChange(value StateHandler) {
	s.mu.Lock()
	s.onState = value
	s.mu.Unlock()
}

func (s *GXSocket) tracef(lock bool, traceType gxcommon.TraceTypes, fmtStr string, a ...any) {
	if !s.tracing(lock, traceType) {
		return
	}
	s.trace(lock, traceType, fmt.Sprintf(fmtStr, a...))
}

func (s *GXSocket) tracing(lock bool, traceType gxcommon.TraceTypes) bool {
	if lock {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	return s.onTrace != nil && !(int(s.traceLevel) < int(traceType))
}

func (s *GXSocket) trace(lock bool, traceType gxcommon.TraceTypes, message string) {
	var cb TraceHandler
	trace := false
	if lock {
		s.mu.RLock()
		trace = !(int(s.traceLevel) < int(traceType))
		cb = s.onTrace
		s.mu.RUnlock()
	} else {
		trace = !(int(s.traceLevel) < int(traceType))
		cb = s.onTrace
	}
	if cb != nil && trace {
		cb(s, *gxcommon.NewTraceEventArgs(traceType, message, ""))
	}
}

func (s *GXSocket) statef(lock bool, state gxcommon.MediaState) {
	var cb StateHandler
	if lock {
		s.mu.RLock()
		cb = s.onState
		s.mu.RUnlock()
	} else {
		cb = s.onState
	}
	if cb != nil {
		cb(s, *gxcommon.NewMediaStateEventArgs(state))
	}
}

// Localize messages for the specified language.
// No errors is returned if language is not supported.
func (s *GXSocket) Localize(language language.Tag) {
	s.p = message.NewPrinter(language)
}

//nolint:errcheck
func init() {
	// --- English (default) ---
	message.SetString(language.AmericanEnglish, "msg.connecting_to", "Connecting to %s:%d")
	message.SetString(language.AmericanEnglish, "msg.connected_to", "Connected to %s:%d")
	message.SetString(language.AmericanEnglish, "msg.connect_failed", "connect to %s:%d failed: %v")
	message.SetString(language.AmericanEnglish, "msg.closing_connection", "Closing connection to %s:%d")
	message.SetString(language.AmericanEnglish, "msg.connection_closed", "Connection closed to %s:%d")

	// --- German (de) ---
	message.SetString(language.German, "msg.connecting_to", "Verbinde mit %s:%d")
	message.SetString(language.German, "msg.connected_to", "Verbunden mit %s:%d")
	message.SetString(language.German, "msg.connect_failed", "Verbindung zu %s:%d fehlgeschlagen: %v")
	message.SetString(language.German, "msg.closing_connection", "Verbindung zu %s:%d wird geschlossen")
	message.SetString(language.German, "msg.connection_closed", "Verbindung zu %s:%d wurde geschlossen")

	// --- Finnish (fi) ---
	message.SetString(language.Finnish, "msg.connecting_to", "Yhdistetään kohteeseen %s:%d")
	message.SetString(language.Finnish, "msg.connected_to", "Yhdistetty kohteeseen %s:%d")
	message.SetString(language.Finnish, "msg.connect_failed", "Yhteyden muodostus kohteeseen %s:%d epäonnistui: %v")
	message.SetString(language.Finnish, "msg.closing_connection", "Suljetaan yhteys kohteeseen %s:%d")
	message.SetString(language.Finnish, "msg.connection_closed", "Yhteys suljettu kohteeseen %s:%d")

	// --- Swedish (sv) ---
	message.SetString(language.Swedish, "msg.connecting_to", "Ansluter till %s:%d")
	message.SetString(language.Swedish, "msg.connected_to", "Ansluten till %s:%d")
	message.SetString(language.Swedish, "msg.connect_failed", "Anslutning till %s:%d misslyckades: %v")
	message.SetString(language.Swedish, "msg.closing_connection", "Stänger anslutning till %s:%d")
	message.SetString(language.Swedish, "msg.connection_closed", "Anslutning stängd till %s:%d")
}
