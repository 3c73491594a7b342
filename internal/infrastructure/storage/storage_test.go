package storage

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/Logta/aco-simulation/internal/domain"
)

func sampleSession() *domain.ReplaySession {
	params := domain.DefaultParams()
	params.AntCount = 25
	params.DecayModel = domain.DecayLogarithmic

	return &domain.ReplaySession{
		Instance:  "main",
		Seed:      123456789,
		Timestamp: 1700000000,
		Params:    params,
		Actions: []domain.ReplayAction{
			{Tick: 0, Token: "viewer-1", Action: domain.ActionInit, Payload: json.RawMessage(`{}`)},
			{Tick: 42, Token: "viewer-1", Action: domain.ActionPlaceFood, Payload: json.RawMessage(`{"x":100,"y":200,"amount":30}`)},
			{Tick: 90, Token: "viewer-2", Action: domain.ActionPause, Payload: json.RawMessage{}},
			{Tick: 150, Token: "viewer-2", Action: domain.ActionSetSpeed, Payload: json.RawMessage(`{"speed":2.5}`)},
		},
	}
}

func TestReplayRoundTrip(t *testing.T) {
	orig := sampleSession()

	var buf bytes.Buffer
	if err := writeBinary(&buf, orig); err != nil {
		t.Fatalf("writeBinary: %v", err)
	}

	got, err := readBinary(&buf)
	if err != nil {
		t.Fatalf("readBinary: %v", err)
	}

	if got.Instance != orig.Instance {
		t.Errorf("Instance = %q, want %q", got.Instance, orig.Instance)
	}
	if got.Seed != orig.Seed || got.Timestamp != orig.Timestamp {
		t.Errorf("header mismatch: seed %d/%d ts %d/%d", got.Seed, orig.Seed, got.Timestamp, orig.Timestamp)
	}
	if got.Params != orig.Params {
		t.Errorf("Params = %+v, want %+v", got.Params, orig.Params)
	}
	if len(got.Actions) != len(orig.Actions) {
		t.Fatalf("len(Actions) = %d, want %d", len(got.Actions), len(orig.Actions))
	}
	for i, a := range got.Actions {
		want := orig.Actions[i]
		if a.Tick != want.Tick || a.Action != want.Action || a.Token != want.Token {
			t.Errorf("action %d: got %+v, want %+v", i, a, want)
		}
		if !bytes.Equal(a.Payload, want.Payload) {
			t.Errorf("action %d payload: got %s, want %s", i, a.Payload, want.Payload)
		}
	}
}

func TestReplayRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBinary(&buf, sampleSession()); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	copy(data, "NOPE")

	if _, err := readBinary(bytes.NewReader(data)); err == nil {
		t.Error("чужая сигнатура должна отклоняться")
	}
}

func TestReplayRejectsTruncated(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBinary(&buf, sampleSession()); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	if _, err := readBinary(bytes.NewReader(data[:len(data)-5])); err == nil {
		t.Error("обрезанный файл должен давать ошибку, а не мусор")
	}
}

func TestSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewReplayService(dir)
	orig := sampleSession()

	if err := svc.Save(orig); err != nil {
		t.Fatalf("Save: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.acrp"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("ожидался один .acrp файл, нашлось %d (%v)", len(matches), err)
	}

	got, err := svc.Load(matches[0])
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Seed != orig.Seed || len(got.Actions) != len(orig.Actions) {
		t.Error("файл на диске не совпадает с сохраненной сессией")
	}
}
