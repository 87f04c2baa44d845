package domain

import "encoding/json"

// Status is the status block every remote response carries.
type Status struct {
	ErrorCode int    `json:"errorCode"`
	HTTPCode  int    `json:"httpCode"`
	Msg       string `json:"msg"`
	MsgType   int    `json:"msgType"`
}

// Envelope is the {status, data} wrapper all remote responses use. Data is
// left raw so gateway callers can decode it into whatever shape the endpoint
// returns.
type Envelope struct {
	Status Status          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// OK reports whether the envelope signals business success. A false result is
// not an error: callers are expected to branch on it, never to panic or throw.
func (e *Envelope) OK() bool { return e.Status.HTTPCode == 200 }
