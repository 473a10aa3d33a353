package main

import (
	"fmt"
	"html/template"
)

// App holds the page data, read-only once NewApp returns, and its stores.
type App struct {
	Data      Page
	DB        *HitDB
	Templates Templates
}

func NewApp(cfg Config) (*App, error) {
	db, err := newDB(cfg.DBFile)
	if err != nil {
		return nil, err
	}

	app := &App{
		Data: Page{
			LogoURL: cfg.PageLogoURL,
			Title:   cfg.PageTitle,
			Intro:   cfg.PageIntro,
			Banner:  CareerNavigatorBanner(),
			CTAURL:  CareerNavigatorURL,
			Social:  cfg.Social,
		},
		DB: &HitDB{db},
		Templates: Templates{
			Home: newPageCache(
				template.Must(template.ParseFS(templateFS, "templates/home.html", "templates/utils.html"))),
			Admin: template.Must(template.ParseFS(templateFS, "templates/admin.html", "templates/utils.html")),
		},
	}

	if err := app.Templates.Home.Render(app.Data); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to save template: %w", err)
	}

	return app, nil
}

// adminPage returns a copy of the page data with the current click count.
func (app *App) adminPage() (Page, error) {
	hits, err := app.DB.GetHits(bannerName)
	if err != nil {
		return Page{}, fmt.Errorf("error while getting hits: %w", err)
	}

	p := app.Data
	p.Hits = hits
	return p, nil
}

func (app *App) Close() error {
	return app.DB.Close()
}
