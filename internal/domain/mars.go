package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Measurement struct {
	Average FlexString `json:"av"`
	Min     FlexString `json:"mn"`
	Max     FlexString `json:"mx"`
}

// SolWeather is the InSight summary for one sol. Sensor blocks are optional.
type SolWeather struct {
	Sol         FlexString   `json:"sol,omitempty"`
	Temperature *Measurement `json:"AT,omitempty"`
	WindSpeed   *Measurement `json:"HWS,omitempty"`
	Pressure    *Measurement `json:"PRE,omitempty"`
	FirstUTC    string       `json:"First_UTC,omitempty"`
	LastUTC     string       `json:"Last_UTC,omitempty"`
	Season      string       `json:"Season,omitempty"`
}

// MarsWeather accepts the keyed shape {"sol_keys": [...], "<sol>": {...}} and
// the array shape [{"sol": "...", ...}]. Error and Message carry a
// domain-level failure reported inside a successful envelope.
type MarsWeather struct {
	SolKeys []string
	Sols    map[string]SolWeather
	Error   string
	Message string
}

func (m *MarsWeather) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	m.SolKeys = nil
	m.Sols = map[string]SolWeather{}

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '[' {
		var list []SolWeather
		if err := json.Unmarshal(data, &list); err != nil {
			return fmt.Errorf("mars weather array: %w", err)
		}
		for _, w := range list {
			key := w.Sol.String()
			if key == "" {
				continue
			}
			m.SolKeys = append(m.SolKeys, key)
			m.Sols[key] = w
		}
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("mars weather object: %w", err)
	}

	if raw, ok := fields["error"]; ok {
		var e FlexString
		_ = json.Unmarshal(raw, &e)
		m.Error = e.String()
	}
	if raw, ok := fields["message"]; ok {
		var msg FlexString
		_ = json.Unmarshal(raw, &msg)
		m.Message = msg.String()
	}

	if raw, ok := fields["sol_keys"]; ok {
		var keys []FlexString
		if err := json.Unmarshal(raw, &keys); err != nil {
			return fmt.Errorf("sol_keys: %w", err)
		}
		for _, k := range keys {
			m.SolKeys = append(m.SolKeys, k.String())
		}
	}

	for _, key := range m.SolKeys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var w SolWeather
		if err := json.Unmarshal(raw, &w); err != nil {
			return fmt.Errorf("sol %s: %w", key, err)
		}
		w.Sol = FlexString(key)
		m.Sols[key] = w
	}
	return nil
}

// Latest returns the most recent sol key and its data. The key is reported
// even when its data block is missing.
func (m MarsWeather) Latest() (string, *SolWeather) {
	if len(m.SolKeys) == 0 {
		return "", nil
	}
	key := m.SolKeys[len(m.SolKeys)-1]
	w, ok := m.Sols[key]
	if !ok {
		return key, nil
	}
	return key, &w
}
