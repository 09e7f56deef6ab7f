package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/lox/fairdice/internal/fairness"
)

// fileLog mirrors Log in the shape gohcl can decode.
type fileLog struct {
	Session   string      `hcl:"session"`
	Dice      []string    `hcl:"dice,optional"`
	Exchanges []fileEntry `hcl:"exchange,block"`
}

type fileEntry struct {
	Label       string `hcl:"label,label"`
	Rule        string `hcl:"rule"`
	Range       int    `hcl:"range"`
	MAC         string `hcl:"mac"`
	Value       int    `hcl:"value"`
	Key         string `hcl:"key"`
	Supplied    int    `hcl:"supplied"`
	Result      int    `hcl:"result"`
	CommittedAt string `hcl:"committed_at"`
	DisclosedAt string `hcl:"disclosed_at"`
}

// Encode renders the log as HCL.
func Encode(l Log) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	root.SetAttributeValue("session", cty.StringVal(l.Session))
	if len(l.Dice) == 0 {
		root.SetAttributeValue("dice", cty.ListValEmpty(cty.String))
	} else {
		specs := make([]cty.Value, len(l.Dice))
		for i, s := range l.Dice {
			specs[i] = cty.StringVal(s)
		}
		root.SetAttributeValue("dice", cty.ListVal(specs))
	}

	for _, e := range l.Exchanges {
		root.AppendNewline()
		body := root.AppendNewBlock("exchange", []string{e.Label}).Body()
		body.SetAttributeValue("rule", cty.StringVal(string(e.Rule)))
		body.SetAttributeValue("range", cty.NumberIntVal(int64(e.Range)))
		body.SetAttributeValue("mac", cty.StringVal(e.MAC))
		body.SetAttributeValue("value", cty.NumberIntVal(int64(e.Value)))
		body.SetAttributeValue("key", cty.StringVal(e.Key))
		body.SetAttributeValue("supplied", cty.NumberIntVal(int64(e.Supplied)))
		body.SetAttributeValue("result", cty.NumberIntVal(int64(e.Result)))
		body.SetAttributeValue("committed_at", cty.StringVal(e.CommittedAt.UTC().Format(time.RFC3339Nano)))
		body.SetAttributeValue("disclosed_at", cty.StringVal(e.DisclosedAt.UTC().Format(time.RFC3339Nano)))
	}

	return f.Bytes()
}

// WriteFile stores the log at path. Readers never observe a partial file.
func WriteFile(path string, l Log) error {
	return writeAtomic(path, Encode(l), 0o644)
}

// ReadFile loads a log written by WriteFile.
func ReadFile(path string) (Log, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Log{}, fmt.Errorf("failed to parse audit file: %s", diags.Error())
	}

	var raw fileLog
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return Log{}, fmt.Errorf("failed to decode audit file: %s", diags.Error())
	}

	l := Log{Session: raw.Session, Dice: raw.Dice}
	for _, fe := range raw.Exchanges {
		committed, err := time.Parse(time.RFC3339Nano, fe.CommittedAt)
		if err != nil {
			return Log{}, fmt.Errorf("exchange %q: committed_at: %w", fe.Label, err)
		}
		disclosed, err := time.Parse(time.RFC3339Nano, fe.DisclosedAt)
		if err != nil {
			return Log{}, fmt.Errorf("exchange %q: disclosed_at: %w", fe.Label, err)
		}
		l.Exchanges = append(l.Exchanges, Entry{
			Label:       fe.Label,
			Rule:        fairness.Rule(fe.Rule),
			Range:       fe.Range,
			MAC:         fe.MAC,
			Value:       fe.Value,
			Key:         fe.Key,
			Supplied:    fe.Supplied,
			Result:      fe.Result,
			CommittedAt: committed,
			DisclosedAt: disclosed,
		})
	}
	return l, nil
}

// writeAtomic writes to a temp file in the same directory and renames it
// into place.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmp = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
