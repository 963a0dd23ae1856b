package app

import (
	"context"

	"github.com/vk/issctl/internal/ctxlog"
	"github.com/vk/issctl/internal/opennotify"
)

// Location fetches and prints the current ISS position.
func (a *App) Location(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	loc, err := a.client.CurrentLocation(ctx)
	if err != nil {
		return err
	}
	a.renderer.Location(loc)
	return nil
}

// Passes fetches and prints the upcoming overhead passes for the query.
func (a *App) Passes(ctx context.Context, q opennotify.PassQuery) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	res, err := a.client.Passes(ctx, q)
	if err != nil {
		return err
	}
	a.renderer.Passes(res)
	return nil
}

// People fetches and prints the roster of people currently in space.
func (a *App) People(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	res, err := a.client.People(ctx)
	if err != nil {
		return err
	}
	a.renderer.People(res)
	return nil
}
