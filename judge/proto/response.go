package proto

import (
	"encoding/json"

	"oj-judge/judge"
)

// Response is the envelope sent for every server message. Exactly one
// of Error, Verdict, TestCase is populated, selected by which
// constructor built it (spec.md §6).
type Response struct {
	OK       bool
	Error    string
	Verdict  *judge.Verdict
	TestCase *uint32
}

// ProgressResponse announces that judging of test case n is about to
// begin.
func ProgressResponse(n uint32) Response {
	return Response{OK: true, TestCase: &n}
}

// FinalResponse announces the terminal verdict of a batch run.
func FinalResponse(v judge.Verdict) Response {
	return Response{OK: true, Verdict: &v}
}

// FailureResponse announces an infrastructure failure; the session
// terminates after this message (spec.md §7).
func FailureResponse(message string) Response {
	return Response{OK: false, Error: message}
}

// wireResponse mirrors the exact JSON shape of the envelope, including
// the always-present null fields spec.md §6 shows in its examples.
type wireResponse struct {
	OK       bool         `json:"ok"`
	Error    *string      `json:"error"`
	Verdict  *wireVerdict `json:"verdict"`
	TestCase *uint32      `json:"test_case"`
}

// MarshalJSON implements json.Marshaler.
func (r Response) MarshalJSON() ([]byte, error) {
	w := wireResponse{OK: r.OK, TestCase: r.TestCase}
	if r.Error != "" {
		w.Error = &r.Error
	}
	if r.Verdict != nil {
		wv := wireVerdict(*r.Verdict)
		w.Verdict = &wv
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Response) UnmarshalJSON(data []byte) error {
	var w wireResponse
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.OK = w.OK
	r.TestCase = w.TestCase
	if w.Error != nil {
		r.Error = *w.Error
	}
	if w.Verdict != nil {
		v := judge.Verdict(*w.Verdict)
		r.Verdict = &v
	}
	return nil
}
