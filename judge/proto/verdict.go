package proto

import (
	"encoding/json"
	"fmt"

	"oj-judge/judge"
)

// wireVerdict renders a judge.Verdict in its externally-tagged form,
// matching the reference server's JSON shape exactly:
//
//	{"Accepted":{"time":123,"memory":5}}
//	{"WrongAnswer":"Wrong answer in line 1"}
//	"TimeLimitExceeded"
//	"MemoryLimitExceeded"
//	"IdleLimitExceeded"
//	{"RuntimeError":11}
type wireVerdict judge.Verdict

type acceptedPayload struct {
	Time   uint64 `json:"time"`
	Memory uint64 `json:"memory"`
}

func (v wireVerdict) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case judge.Accepted:
		return json.Marshal(map[string]acceptedPayload{
			"Accepted": {Time: v.TimeMs, Memory: v.MemMB},
		})
	case judge.WrongAnswer:
		return json.Marshal(map[string]string{"WrongAnswer": v.Msg})
	case judge.RuntimeError:
		return json.Marshal(map[string]int{"RuntimeError": v.Signal})
	case judge.TimeLimitExceeded, judge.MemoryLimitExceeded, judge.IdleLimitExceeded:
		return json.Marshal(v.Kind.Ident())
	default:
		return nil, fmt.Errorf("proto: unhandled verdict kind %v", v.Kind)
	}
}

func (v *wireVerdict) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		switch tag {
		case judge.TimeLimitExceeded.Ident():
			*v = wireVerdict{Kind: judge.TimeLimitExceeded}
		case judge.MemoryLimitExceeded.Ident():
			*v = wireVerdict{Kind: judge.MemoryLimitExceeded}
		case judge.IdleLimitExceeded.Ident():
			*v = wireVerdict{Kind: judge.IdleLimitExceeded}
		default:
			return fmt.Errorf("proto: unknown verdict tag %q", tag)
		}
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("proto: malformed verdict: %w", err)
	}
	if payload, ok := obj["Accepted"]; ok {
		var p acceptedPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return err
		}
		*v = wireVerdict{Kind: judge.Accepted, TimeMs: p.Time, MemMB: p.Memory}
		return nil
	}
	if payload, ok := obj["WrongAnswer"]; ok {
		var msg string
		if err := json.Unmarshal(payload, &msg); err != nil {
			return err
		}
		*v = wireVerdict{Kind: judge.WrongAnswer, Msg: msg}
		return nil
	}
	if payload, ok := obj["RuntimeError"]; ok {
		var signal int
		if err := json.Unmarshal(payload, &signal); err != nil {
			return err
		}
		*v = wireVerdict{Kind: judge.RuntimeError, Signal: signal}
		return nil
	}
	return fmt.Errorf("proto: verdict object has no recognized tag")
}
