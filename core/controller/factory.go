package controller

import "recipe-finder-app/core/interfaces"

// Factory builds controllers that share a searcher, renderer and logger but
// each own a results area, e.g. one per web request.
type Factory struct {
	Searcher interfaces.RecipeSearcher
	Renderer Renderer
	Logger   interfaces.Logger
	Messages Messages
}

// New creates a controller writing to area and alerting through alerter
func (f *Factory) New(area interfaces.ResultsArea, alerter Alerter) *Controller {
	return New(Options{
		Area:     area,
		Searcher: f.Searcher,
		Renderer: f.Renderer,
		Alerter:  alerter,
		Logger:   f.Logger,
		Messages: f.Messages,
	})
}
