package app

import "net/http"

// Config holds runtime wiring options for building the client.
type Config struct {
	Home        string       // state directory, e.g. $HOME/.sfutils
	BaseURL     string       // API root override, mainly for tests
	HTTP        *http.Client // optional; defaults to http.DefaultClient
	KeyPool     string       // optional path to a YAML signing-key pool
	Token       string       // cookie .SFCommunity
	Session     string       // cookie session_APP
	DeviceToken string       // UUID; random when empty
	AppVersion  string       // defaults to the first supported version
	Channel     string       // defaults to HomePage
}
