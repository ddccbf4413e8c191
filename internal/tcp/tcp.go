// Package tcp models the TCP connection lifecycle as a Mealy machine and
// drives it from a line-oriented event stream.
package tcp

import (
	"github.com/aretw0/automata"
	"github.com/aretw0/automata/pkg/domain"
)

// MachineName is the name of every connection machine.
const MachineName = "TCP FSM"

// Connection states.
const (
	Closed      = "CLOSED"
	Listen      = "LISTEN"
	SynSent     = "SYN_SENT"
	SynRcvd     = "SYN_RCVD"
	Established = "ESTABLISHED"
	FinWait1    = "FIN_WAIT_1"
	FinWait2    = "FIN_WAIT_2"
	Closing     = "CLOSING"
	TimeWait    = "TIME_WAIT"
	CloseWait   = "CLOSE_WAIT"
	LastAck     = "LAST_ACK"
)

// Events.
const (
	Timeout domain.Symbol = "TIMEOUT"
	SData   domain.Symbol = "SDATA"
	RData   domain.Symbol = "RDATA"
	Fin     domain.Symbol = "FIN"
	Ack     domain.Symbol = "ACK"
	SynAck  domain.Symbol = "SYNACK"
	Close   domain.Symbol = "CLOSE"
	Syn     domain.Symbol = "SYN"
	Active  domain.Symbol = "ACTIVE"
	Passive domain.Symbol = "PASSIVE"
)

// Outputs emitted on transitions.
const (
	OutData   = "<n>"
	OutFin    = "<fin>"
	OutAck    = "<ack>"
	OutSynAck = "<syn-ack>"
	OutSyn    = "<syn>"
	OutNone   = "Λ"
)

// Events lists the recognized events.
var Events = []domain.Symbol{Timeout, SData, RData, Fin, Ack, SynAck, Close, Syn, Active, Passive}

// IsEvent reports whether s is one of the recognized events.
func IsEvent(s domain.Symbol) bool {
	for _, e := range Events {
		if e == s {
			return true
		}
	}
	return false
}

type edge struct {
	from   string
	event  domain.Symbol
	output string
	to     string
}

var table = []edge{
	{Closed, Passive, OutNone, Listen},
	{Closed, Active, OutSyn, SynSent},
	{Listen, Syn, OutSynAck, SynRcvd},
	{Listen, Close, OutNone, Closed},
	{SynSent, Close, OutNone, Closed},
	{SynSent, Syn, OutSynAck, SynRcvd},
	{SynSent, SynAck, OutAck, Established},
	{SynRcvd, Ack, OutNone, Established},
	{SynRcvd, Close, OutFin, FinWait1},
	{Established, Close, OutFin, FinWait1},
	{Established, Fin, OutAck, CloseWait},
	{Established, RData, OutData, Established},
	{Established, SData, OutData, Established},
	{FinWait1, Fin, OutAck, Closing},
	{FinWait1, Ack, OutNone, FinWait2},
	{FinWait2, Fin, OutAck, TimeWait},
	{Closing, Ack, OutNone, TimeWait},
	{TimeWait, Timeout, OutNone, Closed},
	{CloseWait, Close, OutFin, LastAck},
	{LastAck, Ack, OutNone, Closed},
}

var stateNames = []string{
	Closed, Listen, SynSent, SynRcvd, Established,
	FinWait1, FinWait2, Closing, TimeWait, CloseWait, LastAck,
}

// Connection is a TCP machine plus the data counters kept by the
// ESTABLISHED state.
type Connection struct {
	*automata.Machine

	Received int
	Sent     int
}

// New builds a connection machine with its cursor on CLOSED.
func New(opts ...automata.Option) (*Connection, error) {
	c := &Connection{}
	m := automata.NewMealy(MachineName, opts...)

	states := make(map[string]*automata.State, len(stateNames))
	for _, name := range stateNames {
		var sopts []automata.StateOption
		switch name {
		case Closed:
			sopts = append(sopts, automata.Initial())
		case Established:
			sopts = append(sopts, automata.OnInput(c.count))
		}
		s, err := m.AddState(name, sopts...)
		if err != nil {
			return nil, err
		}
		states[name] = s
	}

	for _, e := range table {
		if err := states[e.from].DefineTransitionWithOutput(e.event, states[e.to], e.output); err != nil {
			return nil, err
		}
	}

	if err := m.Reset(); err != nil {
		return nil, err
	}
	c.Machine = m
	return c, nil
}

func (c *Connection) count(event domain.Symbol) {
	switch event {
	case RData:
		c.Received++
	case SData:
		c.Sent++
	}
}

// StateName returns the name of the current state.
func (c *Connection) StateName() string {
	if s := c.Current(); s != nil {
		return s.Name()
	}
	return ""
}

// Factory builds a bare connection machine; it satisfies automata.Factory.
// The data counters are only available through New.
func Factory(opts ...automata.Option) (*automata.Machine, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Machine, nil
}
