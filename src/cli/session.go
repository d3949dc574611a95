// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"io"

	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/config"
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/endpoint"
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/helper/httpclient"
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/heroku"
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/internal/ssldoctor"
	"github.com/balajikrishdev/heroku-cli-plugin-certs-v5/src/logger"
	"github.com/spf13/cobra"
)

// session is the resolved state of one command run.
type session struct {
	app    string
	out    io.Writer
	log    logger.Logger
	api    *heroku.Client
	doctor *ssldoctor.Client
}

// session loads configuration and builds the remote clients. It performs no
// network I/O.
func (o *options) session(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	app := o.app
	if app == "" {
		app = cfg.App
	}
	if app == "" {
		return nil, usageError(msgMissingApp)
	}
	if cfg.API.Token == "" {
		return nil, usageError(msgNotLoggedIn)
	}

	httpCfg := httpclient.NewConfig(o.version)
	httpCfg.Timeout = cfg.TimeoutDuration()
	httpCfg.Log = logger.NewJSONLogger(cmd.ErrOrStderr(), !cfg.Debug)

	log := o.log
	if log == nil {
		log = logger.NewCLILogger()
		log.SetOutput(cmd.ErrOrStderr())
	}

	return &session{
		app:    app,
		out:    cmd.OutOrStdout(),
		log:    log,
		api:    heroku.New(cfg.API.URL, cfg.API.Token, httpCfg),
		doctor: ssldoctor.New(cfg.SSLDoctor.URL, httpCfg),
	}, nil
}

// action runs fn and reports "<msg>... done" once it succeeds.
func (s *session) action(msg string, fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	s.log.Printf("%s... done", msg)
	return nil
}

// selectEndpoint fetches the app's endpoints and picks one by c.
func (s *session) selectEndpoint(ctx context.Context, c endpoint.Criteria) (endpoint.Endpoint, error) {
	set, err := s.api.Endpoints(ctx, s.app)
	if err != nil {
		return endpoint.Endpoint{}, err
	}
	return endpoint.Select(s.app, set, c)
}

// selectFlags are the --name and --endpoint flags of endpoint commands.
type selectFlags struct {
	name   string
	domain string
}

func (f *selectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "name of the endpoint to use")
	cmd.Flags().StringVar(&f.domain, "endpoint", "", "domain of the endpoint to use")
}

func (f *selectFlags) criteria() endpoint.Criteria {
	return endpoint.Criteria{Domain: f.domain, Name: f.name}
}
