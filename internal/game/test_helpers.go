package game

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lox/fairdice/internal/fairness"
	"github.com/lox/fairdice/internal/probability"
)

// ScriptedIO is an IO that replays canned input lines and captures the
// transcript. Once the script runs out Prompt returns io.EOF.
type ScriptedIO struct {
	Inputs      []string
	Lines       []string
	Prompts     int
	MatrixShown int
}

// NewScriptedIO returns an IO that answers prompts with inputs in order.
func NewScriptedIO(inputs ...string) *ScriptedIO {
	return &ScriptedIO{Inputs: inputs}
}

func (s *ScriptedIO) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.Prompts++
	if len(s.Inputs) == 0 {
		return "", io.EOF
	}
	line := s.Inputs[0]
	s.Inputs = s.Inputs[1:]
	return line, nil
}

func (s *ScriptedIO) Show(_ Tone, text string) {
	s.Lines = append(s.Lines, text)
}

func (s *ScriptedIO) ShowMatrix(*probability.Matrix) {
	s.MatrixShown++
}

// Transcript joins every shown line.
func (s *ScriptedIO) Transcript() string {
	return strings.Join(s.Lines, "\n")
}

// ScriptedSource returns queued values from Intn and a fixed byte pattern
// from Read, so every commitment in a test is known in advance.
type ScriptedSource struct {
	Values []int
	next   byte
}

// NewScriptedSource queues values for successive Intn calls.
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{Values: values}
}

func (s *ScriptedSource) Intn(n int) (int, error) {
	if len(s.Values) == 0 {
		return 0, fmt.Errorf("scripted source exhausted (n=%d)", n)
	}
	v := s.Values[0]
	s.Values = s.Values[1:]
	if v < 0 || v >= n {
		return 0, fmt.Errorf("scripted value %d outside [0,%d)", v, n)
	}
	return v, nil
}

func (s *ScriptedSource) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = s.next
		s.next++
	}
	return len(p), nil
}

// MemoryRecorder keeps every exchange event in memory.
type MemoryRecorder struct {
	Commits     map[string]*fairness.Commitment
	Disclosures map[string]fairness.Disclosure
	Rules       map[string]fairness.Rule
	Results     map[string]int
	Order       []string
}

// NewMemoryRecorder returns an empty recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{
		Commits:     make(map[string]*fairness.Commitment),
		Disclosures: make(map[string]fairness.Disclosure),
		Rules:       make(map[string]fairness.Rule),
		Results:     make(map[string]int),
	}
}

func (m *MemoryRecorder) Committed(label string, rule fairness.Rule, c *fairness.Commitment) {
	m.Commits[label] = c
	m.Rules[label] = rule
	m.Order = append(m.Order, "commit:"+label)
}

func (m *MemoryRecorder) Disclosed(label string, d fairness.Disclosure, supplied, result int) {
	m.Disclosures[label] = d
	m.Results[label] = result
	m.Order = append(m.Order, "disclose:"+label)
}
