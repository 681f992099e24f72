package server

import (
	"bufio"
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

// Telnet protocol constants (RFC 854, RFC 855)
const (
	tnIAC  = 255 // Interpret As Command
	tnDONT = 254
	tnDO   = 253
	tnWONT = 252
	tnWILL = 251
	tnSB   = 250 // Subnegotiation Begin
	tnSE   = 240 // Subnegotiation End
)

type telnetState int

const (
	telnetStateNormal    telnetState = iota // Processing normal text
	telnetStateIAC                          // Just saw IAC
	telnetStateCommand                      // Reading option byte after WILL/WONT/DO/DONT
	telnetStateSubneg                       // In subnegotiation (after SB)
	telnetStateSubnegIAC                    // Saw IAC while in subnegotiation
)

// byteKind is what the telnet filter made of one input byte
type byteKind int

const (
	byteDrop byteKind = iota // protocol or control byte
	byteText                 // part of the line
	byteEOL                  // terminates the line
)

// telnetFilter strips telnet negotiation from a byte stream so clients
// like telnet(1) and nc can both talk to the server
type telnetFilter struct {
	state     telnetState
	lastWasCR bool
}

func (f *telnetFilter) feed(b byte) byteKind {
	switch f.state {
	case telnetStateNormal:
		switch {
		case b == tnIAC:
			f.state = telnetStateIAC
			return byteDrop
		case b == '\r':
			f.lastWasCR = true
			return byteEOL
		case b == '\n':
			// LF after CR was already delivered by the CR
			if f.lastWasCR {
				f.lastWasCR = false
				return byteDrop
			}
			return byteEOL
		}
		f.lastWasCR = false
		// UTF-8 continuation and lead bytes are >= 128
		if (b >= 32 && b <= 126) || b == '\t' || b >= 128 {
			return byteText
		}
		return byteDrop

	case telnetStateIAC:
		switch b {
		case tnSB:
			f.state = telnetStateSubneg
		case tnWILL, tnWONT, tnDO, tnDONT:
			f.state = telnetStateCommand
		default:
			// IAC IAC and unknown commands
			f.state = telnetStateNormal
		}

	case telnetStateCommand:
		// option byte after WILL/WONT/DO/DONT
		f.state = telnetStateNormal

	case telnetStateSubneg:
		if b == tnIAC {
			f.state = telnetStateSubnegIAC
		}

	case telnetStateSubnegIAC:
		if b == tnSE {
			f.state = telnetStateNormal
		} else {
			f.state = telnetStateSubneg
		}
	}
	return byteDrop
}

// Transport is the interface for connection I/O
type Transport interface {
	ReadLine() (string, error)
	WriteLine(string) error
	Close() error
	RemoteAddr() string
}

// ErrLineTooLong is returned when a client sends more than MaxLineLength
// bytes without a line terminator
var ErrLineTooLong = errors.New("input line too long")

// MaxLineLength bounds a single input line
const MaxLineLength = 64 * 1024

// TCPTransport wraps a net.Conn for TCP socket communication
type TCPTransport struct {
	conn        net.Conn
	reader      *bufio.Reader
	writer      *bufio.Writer
	mu          sync.Mutex
	filter      telnetFilter
	idleTimeout time.Duration
}

// NewTCPTransport creates a new TCP transport from a net.Conn. A positive
// idleTimeout closes the read side after that long without input.
func NewTCPTransport(conn net.Conn, idleTimeout time.Duration) *TCPTransport {
	return &TCPTransport{
		conn:        conn,
		reader:      bufio.NewReader(conn),
		writer:      bufio.NewWriter(conn),
		idleTimeout: idleTimeout,
	}
}

// ReadLine reads a line from the connection, stripping telnet IAC sequences.
// Blocks until a complete line (terminated by CR or LF) is available, or EOF.
func (t *TCPTransport) ReadLine() (string, error) {
	if t.idleTimeout > 0 {
		if err := t.conn.SetReadDeadline(time.Now().Add(t.idleTimeout)); err != nil {
			return "", err
		}
	}

	var line strings.Builder
	for {
		b, err := t.reader.ReadByte()
		if err != nil {
			// If we have partial data and hit EOF, return what we have
			if err == io.EOF && line.Len() > 0 {
				return line.String(), nil
			}
			return "", err
		}

		switch t.filter.feed(b) {
		case byteEOL:
			return line.String(), nil
		case byteText:
			if line.Len() >= MaxLineLength {
				return "", ErrLineTooLong
			}
			line.WriteByte(b)
		}
	}
}

// WriteLine writes a line to the connection with a telnet line ending
func (t *TCPTransport) WriteLine(msg string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.writer.WriteString(msg + "\r\n"); err != nil {
		return err
	}
	return t.writer.Flush()
}

// Close closes the underlying connection
func (t *TCPTransport) Close() error {
	return t.conn.Close()
}

// RemoteAddr returns the remote address as a string
func (t *TCPTransport) RemoteAddr() string {
	return t.conn.RemoteAddr().String()
}

// PipeTransport is an in-memory transport for testing
type PipeTransport struct {
	input   chan string // Lines to feed to server (from test)
	output  chan string // Lines received from server (to test)
	closed  bool
	closeMu sync.Mutex
}

// NewPipeTransport creates a new pipe transport for testing
func NewPipeTransport() *PipeTransport {
	return &PipeTransport{
		input:  make(chan string, 100),
		output: make(chan string, 100),
	}
}

// ReadLine reads a line from the input channel (blocks)
func (t *PipeTransport) ReadLine() (string, error) {
	line, ok := <-t.input
	if !ok {
		return "", io.EOF
	}
	return line, nil
}

// WriteLine writes a line to the output channel
func (t *PipeTransport) WriteLine(msg string) error {
	t.closeMu.Lock()
	defer t.closeMu.Unlock()
	if t.closed {
		return errors.New("transport closed")
	}
	t.output <- msg
	return nil
}

// Close closes the transport
func (t *PipeTransport) Close() error {
	t.closeMu.Lock()
	defer t.closeMu.Unlock()

	if !t.closed {
		t.closed = true
		close(t.output)
	}
	return nil
}

// RemoteAddr returns "pipe" for pipe transports
func (t *PipeTransport) RemoteAddr() string {
	return "pipe"
}

// Send sends a line to the server (called by test code)
func (t *PipeTransport) Send(line string) {
	t.input <- line
}

// Hangup ends the input side, as a client disconnect would
func (t *PipeTransport) Hangup() {
	close(t.input)
}

// Receive receives a line from the server (called by test code)
// Returns empty string if channel is closed
func (t *PipeTransport) Receive() string {
	line, ok := <-t.output
	if !ok {
		return ""
	}
	return line
}

// DrainOutput reads all output until the transport is closed
func (t *PipeTransport) DrainOutput() []string {
	var lines []string
	for line := range t.output {
		lines = append(lines, line)
	}
	return lines
}
