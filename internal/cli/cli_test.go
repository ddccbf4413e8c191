package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testdata = filepath.Join("..", "..", "pkg", "schema", "testdata")

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		opts    RunOptions
		want    []string
		wantErr bool
	}{
		{
			name: "acceptor",
			opts: RunOptions{Definition: filepath.Join(testdata, "binary101.yaml"), Symbols: []string{"1", "0", "1"}},
			want: []string{"machine:     binary-101 (acceptor)", "final state: q3", "accepted:    true"},
		},
		{
			name: "moore",
			opts: RunOptions{Definition: filepath.Join(testdata, "parity.json"), Symbols: []string{"1", "1", "0"}},
			want: []string{"final state: even", "outputs:     even odd even"},
		},
		{
			name: "tcp by default",
			opts: RunOptions{Symbols: []string{"PASSIVE", "SYN", "ACK"}},
			want: []string{"machine:     TCP FSM (mealy)", "final state: ESTABLISHED", "outputs:     Λ <syn-ack> Λ"},
		},
		{
			name: "skip none",
			opts: RunOptions{Definition: TCPName, Symbols: []string{"PASSIVE", "SYN", "ACK"}, SkipNone: true},
			want: []string{"outputs:     <syn-ack>"},
		},
		{
			name:    "rejected symbol",
			opts:    RunOptions{Definition: TCPName, Symbols: []string{"ACK"}},
			want:    []string{"final state: CLOSED"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			tt.opts.Out = &out

			err := Run(tt.opts)
			if tt.wantErr {
				assert.True(t, domain.IsBehavioral(err), "got %v", err)
			} else {
				require.NoError(t, err)
			}
			for _, line := range tt.want {
				assert.Contains(t, out.String(), line)
			}
		})
	}
}

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	err := Run(RunOptions{
		Options:    Options{Out: &out},
		Definition: filepath.Join(testdata, "vending.yaml"),
		Symbols:    []string{"coin", "coin", "select", "kick"},
		JSON:       true,
	})
	require.NoError(t, err)

	var res RunResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, "vending", res.Machine)
	assert.Equal(t, "idle", res.FinalState)
	assert.Equal(t, []any{"credit", "refund", "vend", nil}, res.Outputs)
	assert.Empty(t, res.Error)
}

func TestValidate(t *testing.T) {
	broken := writeFile(t, "broken.yaml", `
name: broken
variant: driver
states:
  - name: a
    accepting: true
    transitions:
      - {on: x, to: nowhere}
`)

	var out bytes.Buffer
	err := Validate(&out, filepath.Join(testdata, "binary101.yaml"), broken)
	assert.ErrorIs(t, err, ErrInvalid)

	text := out.String()
	assert.Contains(t, text, "binary101.yaml: ok")
	assert.Contains(t, text, "broken.yaml: 3 problem(s)")
	assert.Contains(t, text, "states[0].transitions[0].to")

	assert.ErrorIs(t, Validate(&out), ErrNoDefinition)
}

func TestGraph(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Graph(&out, GraphOptions{}))
	assert.True(t, strings.HasPrefix(out.String(), `digraph "TCP FSM" {`))

	out.Reset()
	require.NoError(t, Graph(&out, GraphOptions{Definition: filepath.Join(testdata, "parity.json"), Format: "mermaid"}))
	assert.True(t, strings.HasPrefix(out.String(), "graph LR"))

	assert.Error(t, Graph(&out, GraphOptions{Format: "png"}))
}

func TestGraph_HighlightsRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Graph(&out, GraphOptions{Definition: TCPName, Symbols: []string{"PASSIVE", "SYN"}}))

	text := out.String()
	assert.Contains(t, text, `s0 [label="CLOSED", style=filled, fillcolor="#e1f5fe"];`)
	assert.Contains(t, text, `s1 [label="LISTEN", style=filled, fillcolor="#e1f5fe"];`)
	assert.Contains(t, text, `s3 [label="SYN_RCVD", style=filled, fillcolor="#ffeb3b"];`)
	assert.Contains(t, text, `s2 [label="SYN_SENT"];`)

	out.Reset()
	require.NoError(t, Graph(&out, GraphOptions{Definition: TCPName, Format: "mermaid", Symbols: []string{"ACTIVE"}}))
	assert.Contains(t, out.String(), "class s2 current;")

	err := Graph(&out, GraphOptions{Definition: TCPName, Symbols: []string{"ACK"}})
	assert.ErrorIs(t, err, domain.ErrNoTransition)
}

func TestDescribe(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Describe(&out, filepath.Join(testdata, "vending.yaml"), true))

	assert.Contains(t, out.String(), "vending")
	assert.Contains(t, out.String(), "credit")
}

func TestRunConsole(t *testing.T) {
	var out bytes.Buffer
	err := RunConsole(context.Background(), ConsoleOptions{
		Options: Options{In: strings.NewReader("ACTIVE\nSYNACK\nSDATA\n\n"), Out: &out},
	})
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"event received is ACTIVE current state is SYN_SENT",
		"event received is SYNACK current state is ESTABLISHED",
		"DATA Sent count 1",
		"event received is SDATA current state is ESTABLISHED",
	}, "\n")+"\n", out.String())
}

func TestRunConsole_InterruptedBySignal(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(&InterruptError{Signal: syscall.SIGTERM})

	var out bytes.Buffer
	err := RunConsole(ctx, ConsoleOptions{Options: Options{In: r, Out: &out}})
	require.NoError(t, err)
	assert.Equal(t, "\n>>> Interrupted (terminated).\n", out.String())
}

func TestSignalContext(t *testing.T) {
	ctx, stop := SignalContext(context.Background())
	stop()
	<-ctx.Done()
	assert.Nil(t, Interrupted(ctx), "a plain stop is not an interrupt")

	if runtime.GOOS == "windows" {
		t.Skip("signals cannot be sent to the own process on windows")
	}

	ctx, stop = SignalContext(context.Background())
	defer stop()
	self, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, self.Signal(syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context not cancelled by SIGTERM")
	}
	assert.Equal(t, syscall.SIGTERM, Interrupted(ctx))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestRunConsole_Interactive(t *testing.T) {
	var out bytes.Buffer
	err := RunConsole(context.Background(), ConsoleOptions{
		Options:     Options{In: strings.NewReader("PASSIVE\n"), Out: &out},
		Interactive: true,
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), ">>> TCP FSM ready in state CLOSED.")
	assert.Contains(t, out.String(), ">>> Finished in state LISTEN (sent 0, received 0).")
}

func TestBuildRegistry(t *testing.T) {
	reg, err := BuildRegistry(filepath.Join(testdata, "binary101.yaml"), TCPName, filepath.Join(testdata, "parity.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{"binary-101", "parity", "tcp"}, reg.Names())

	name, _, err := reg.Default()
	require.NoError(t, err)
	assert.Equal(t, TCPName, name)

	_, err = BuildRegistry(filepath.Join(testdata, "parity.json"), filepath.Join(testdata, "parity.json"))
	assert.ErrorIs(t, err, registry.ErrDuplicate)
}

func TestBuildRegistry_DefinitionCannotShadowTCP(t *testing.T) {
	path := writeFile(t, "tcp.yaml", "name: tcp\nvariant: driver\nstates:\n  - name: only\n    initial: true\n")

	_, err := BuildRegistry(path)
	assert.ErrorIs(t, err, registry.ErrDuplicate)
	assert.ErrorContains(t, err, path)
}

func TestEventNames(t *testing.T) {
	assert.Equal(t, "TIMEOUT, SDATA, RDATA, FIN, ACK, SYNACK, CLOSE, SYN, ACTIVE, PASSIVE", EventNames())
}
