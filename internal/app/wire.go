package app

import (
	"sfutils/internal/api"
	"sfutils/internal/domain"
	"sfutils/internal/session"
	"sfutils/internal/sign"
	"sfutils/internal/store"
)

// Wire bundles the store, session, and gateway for the CLI.
type Wire struct {
	Credentials domain.CredentialStore
	Session     *session.Session
	API         *api.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	var pool *sign.Pool
	if cfg.KeyPool != "" {
		p, err := sign.LoadPool(cfg.KeyPool)
		if err != nil {
			return nil, err
		}
		pool = p
	}

	sess, err := session.New(session.Config{
		Token:       cfg.Token,
		Session:     cfg.Session,
		DeviceToken: cfg.DeviceToken,
		AppVersion:  cfg.AppVersion,
		Channel:     cfg.Channel,
		BaseURL:     cfg.BaseURL,
		HTTP:        cfg.HTTP,
		Keys:        pool,
	})
	if err != nil {
		return nil, err
	}

	return &Wire{
		Credentials: store.NewCredentialStore(cfg.Home),
		Session:     sess,
		API:         api.New(sess),
	}, nil
}
